package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/qnkhuat/termtris/pkg"
	"github.com/qnkhuat/termtris/pkg/audio"
	"github.com/qnkhuat/termtris/pkg/game"
	"github.com/qnkhuat/termtris/pkg/gui"
	"github.com/qnkhuat/termtris/pkg/mino"
	"golang.org/x/term"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "termtris.json"
	}
	return filepath.Join(dir, "termtris", "config.json")
}

func fatalf(format string, a ...interface{}) {
	log.Printf(format, a...)
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func printSummary(nickname string, g *game.Game) {
	title := color.New(color.FgHiWhite, color.Bold)
	label := color.New(color.FgHiBlack)
	value := color.New(color.FgHiYellow)

	title.Printf("%s - game over\n", nickname)
	for _, line := range []struct {
		label string
		value interface{}
	}{
		{"score", g.Score()},
		{"level", g.Level()},
		{"lines", g.LinesCleared()},
		{"pieces", g.PiecesPlaced()},
	} {
		label.Printf("  %-7s", line.label)
		value.Printf("%v\n", line.value)
	}

	stats := g.Stats()
	label.Print("  ")
	for _, k := range mino.AllKinds {
		color.New(color.FgCyan).Printf("%s:%d ", k, stats[k])
	}
	fmt.Println()
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	logPath := flag.String("log", "./termtris.log", "path to log file")
	nick := flag.String("nick", "", "nickname, random when empty")
	seed := flag.Int64("seed", 0, "piece sequence seed, random when 0")
	mute := flag.Bool("mute", false, "disable sound")
	themePath := flag.String("themes", "", "path to a JSON list of themes")
	themeName := flag.String("theme", "basic", "theme name to pick from -themes")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	pkg.InitLog(*logPath, "CLIENT: ")

	c, err := game.LoadConfig(*configPath)
	if err != nil {
		fatalf("failed to load config: %s", err)
	}

	if *writeConfig {
		err = os.MkdirAll(filepath.Dir(*configPath), 0755)
		if err == nil {
			err = c.Save(*configPath)
		}
		if err != nil {
			fatalf("failed to write config: %s", err)
		}
		color.Green("wrote %s", *configPath)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatalf("failed to start termtris: non-interactive terminals are not supported")
	}

	theme := gui.ThemeBasic
	if *themePath != "" {
		theme, err = gui.LoadTheme(*themePath, *themeName)
		if err != nil {
			fatalf("failed to load theme: %s", err)
		}
	}

	var bag *mino.Bag
	if *seed != 0 {
		bag = mino.NewSeededBag(*seed)
	}

	g := game.NewGame(c, bag)
	g.SetLogger(log.Default())

	var sounds pkg.Sounds
	if c.EnableSound && !*mute {
		sm := audio.NewSoundManager(c.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("sound disabled: %s", err)
		} else {
			defer sm.Cleanup()
			sounds = sm

			if c.MusicFile != "" {
				if err := sm.PlayMusic(c.MusicFile); err != nil {
					log.Printf("music disabled: %s", err)
				}
			}
		}
	}

	nickname := pkg.Nickname(*nick)
	cl := pkg.NewClient(g, theme, nickname, sounds)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		cl.App.Stop()
	}()

	if err := cl.Run(); err != nil {
		fatalf("failed to run application: %s", err)
	}

	printSummary(nickname, g)
}
