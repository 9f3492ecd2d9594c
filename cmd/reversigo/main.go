// Command reversigo connects to a Reversi match-coordination server and
// plays full games using the engine in internal/search.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/pkg/profile"

	"github.com/frankkopp/reversigo/internal/config"
	"github.com/frankkopp/reversigo/internal/logging"
	"github.com/frankkopp/reversigo/internal/search"
	"github.com/frankkopp/reversigo/internal/session"
	"github.com/frankkopp/reversigo/internal/version"
)

func main() {
	host := flag.String("host", "localhost", "match server host")
	port := flag.String("port", "3000", "match server port")
	name := flag.String("name", "Player", "player name announced in OPEN")
	confFile := flag.String("config", "./config.toml", "path to config.toml")
	logLevel := flag.Int("loglvl", 5, "standard log level (0-5)")
	searchLogLevel := flag.Int("searchloglvl", 5, "search-trace log level (0-5)")
	doProfile := flag.Bool("profile", false, "enable CPU profiling for the session's lifetime")
	trace := flag.Bool("trace", false, "dump each game's board history to the search log on END")
	showVersion := flag.Bool("version", false, "print version info and exit")
	flag.Parse()

	if *showVersion {
		printVersionInfo()
		return
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	config.ConfFile = *confFile
	config.LogLevel = *logLevel
	config.SearchLogLevel = *searchLogLevel
	config.Setup()

	log := logging.GetLog()

	phases := search.PhaseConfig{
		PerfectDepth: config.Settings.Search.PerfectDepth,
		WinDepth:     config.Settings.Search.WinDepth,
		NormalDepth:  config.Settings.Search.NormalDepth,
	}
	decider := search.NewDecider(phases)

	client, err := session.NewClient(net.JoinHostPort(*host, *port), *name, decider, phases, *trace)
	if err != nil {
		log.Criticalf("could not connect: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := client.Run(); err != nil {
		log.Criticalf("session ended with error: %v", err)
		os.Exit(1)
	}
}

func printVersionInfo() {
	cwd, _ := os.Getwd()
	fmt.Println("reversigo", version.Version)
	fmt.Println("Go:", runtime.Version(), runtime.GOARCH)
	fmt.Println("CPUs:", runtime.NumCPU(), "Goroutines:", runtime.NumGoroutine())
	fmt.Println("CWD:", cwd)
}
