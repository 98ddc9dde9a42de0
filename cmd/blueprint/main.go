// Command blueprint inspects, exports and re-encodes blueprint directories.
package main

func main() {
	Execute()
}
