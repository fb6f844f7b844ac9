// batteval - Battery Detection Evaluation Tool
//
// batteval compares the batteries detected by each algorithm run against
// video-labelled ground truth and ranks the runs by error.
package main

import (
	"os"

	"github.com/ccollicutt/batteval/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
