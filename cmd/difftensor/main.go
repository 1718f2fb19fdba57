package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	diffusion "github.com/rmera/godiff"
	"github.com/rmera/godiff/config"
)

func main() {
	verbose := flag.Bool("v", false, "Print informational messages to stderr")
	eigen := flag.Bool("eigen", false, "Print the eigensystem of the tensor")
	diag := flag.Bool("diag", false, "Print the diagonalised tensor and the rotation to the structural frame")
	fold := flag.Bool("fold", false, "Fold the angles of every Monte Carlo replica around the actual values")
	out := flag.String("save", "", "Write the configuration back to this file (.zst and .gz are compressed)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] config.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg, err := config.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	C := diffusion.NewContext(cfg.Name)
	if *verbose {
		C.Log = log.New(os.Stderr, "difftensor: ", log.LstdFlags)
	}
	C.Log.Printf("Analysis %s, ID %s", C.Name, C.ID)
	if err = cfg.Apply(C); err != nil {
		log.Fatal(err)
	}
	if *fold {
		T, _ := C.Tensor()
		for i := 0; i < T.SimNum(); i++ {
			if err = C.FoldAngles(&i); err != nil {
				log.Fatal(err)
			}
		}
	}
	if err = C.Display(os.Stdout); err != nil {
		log.Fatal(err)
	}
	if *diag {
		T, _ := C.Tensor()
		fmt.Printf("\nDiagonalised tensor (1/s):\n%s\n", T.TensorDiag())
		fmt.Printf("Rotation (diffusion axes as columns):\n%s\n", T.Rotation())
	}
	if *eigen {
		E, err := C.EigenSystem()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nEigenvalues (1/s):  %g %g %g\n", E.Values[0], E.Values[1], E.Values[2])
		fmt.Printf("Eigenvectors (columns):\n%s\n", E.Rotation)
		fmt.Printf("Euler angles (deg):  %g %g %g\n", E.Alpha*diffusion.Rad2Deg, E.Beta*diffusion.Rad2Deg, E.Gamma*diffusion.Rad2Deg)
	}
	if *out != "" {
		if err = cfg.Save(*out); err != nil {
			log.Fatal(err)
		}
	}
}
