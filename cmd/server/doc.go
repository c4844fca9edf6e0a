// Command server runs the component generation backend.
package main
