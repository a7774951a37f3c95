package main

import (
	practicascmd "github.com/initializ/practicas/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	practicascmd.SetVersionInfo(version, commit)
	practicascmd.Execute()
}
