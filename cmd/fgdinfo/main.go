// Command fgdinfo loads FGD entity definition files and reports on the
// resulting registry.
package main

func main() {
	Execute()
}
