//go:build js
// +build js

package main

func main() {
	notDefined()
}
