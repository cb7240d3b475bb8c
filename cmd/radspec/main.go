package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/radspec/internal/radspec"
)

func main() {
	radspec.SetDebug(os.Getenv("DEBUG") != "")
	radspec.PNG = os.Getenv("PNG") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.yaml"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	radspec.Log().Info().Str("config", cfg).Bool("png", radspec.PNG).Msg("starting")
	if err := radspec.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
