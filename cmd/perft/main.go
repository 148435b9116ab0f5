/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command perft is the command line entry point for the move generator
// core. It reads a FEN (or uses the standard start position), runs the
// PerftDriver to a given depth and prints the node count report, the
// cmd/uci/search/opening-book layers of the original engine this core
// was extracted from are out of scope here and are not linked in.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arbor-chess/perft/internal/config"
	"github.com/arbor-chess/perft/internal/logging"
	"github.com/arbor-chess/perft/internal/movegen"
	"github.com/arbor-chess/perft/internal/position"
	"github.com/arbor-chess/perft/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for the position to run perft on")
	startDepth := flag.Int("startdepth", 0, "if set together with -depth, runs perft for every depth in [startdepth, depth] instead of just depth")
	depth := flag.Int("depth", 0, "starts perft on the given position to the given depth")
	divide := flag.Bool("divide", false, "print a perft-divide subtotal for every root move")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile for the perft run to ./")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *depth <= 0 {
		out.Println("no -depth given, nothing to do. Use -help to see all options.")
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pd := movegen.NewPerftDriver()
	if *startDepth > 0 && *startDepth < *depth {
		pd.StartPerftMulti(*fen, *startDepth, *depth)
		return
	}
	pd.StartPerft(*fen, *depth, *divide)
}

func printVersionInfo() {
	out.Printf("perft %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
