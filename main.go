package main

import "propulsion-estimator/cmd"

func main() {
	cmd.Execute()
}
