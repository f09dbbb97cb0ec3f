// chromadrop is a terminal falling-block puzzle where same-colored lines and full
// rows clear for points against a two minute clock.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chromadrop/config"
	"chromadrop/engine"
	"chromadrop/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlayer  = flag.String("player", "", "Player name shown in the final summary")
	flagSeed    = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	flagPlay    = flag.Bool("play", false, "Start a game immediately, skipping the setup form")
	flagDebug   = flag.Bool("debug", false, "Write a debug log to the temp directory")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardView
var gameShell *ui.Shell
var summaryCard *ui.SummaryCard
var cfg *config.Config

// stopGame cancels the running game loop, if any. Only touched from the UI goroutine.
var stopGame context.CancelFunc
var lastGame engine.GameConfig

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("chromadrop %s\n", Version)
		return
	}

	if *flagDebug {
		path := filepath.Join(os.TempDir(), "chromadrop-debug.log")
		f, err := engine.EnableDebugLog(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromadrop: %s\n", err)
		os.Exit(1)
	}
	if name := strings.TrimSpace(*flagPlayer); name != "" {
		cfg.Player = name
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "chromadrop: %s\n", err)
			os.Exit(1)
		}
	}

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ◆ chromadrop ")

	// Game view setup
	gameHint := tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameBoard = ui.NewBoardView(cfg)
	gamePanel := ui.NewGameInfoPanel()
	gameShell = ui.NewShell(app, gameBoard, gamePanel, gameHint)
	gameFrame := ui.CreateGameLayout(gameBoard, gamePanel, gameHint)
	gameBoard.Box.SetInputCapture(gameShell.InputCapture)

	// Game setup screen
	setupUI := ui.NewGameSetup(cfg.Player, *flagSeed, startGame, func() {
		app.Stop()
	})
	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})

	// Game over screen
	summaryCard = ui.NewSummaryCard()
	summaryCard.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEnter:
			startGame(lastGame)
			return nil
		case event.Key() == tcell.KeyEsc, event.Key() == tcell.KeyRune && event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == 's':
			rootPage.SwitchToPage("setup")
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !*flagPlay)
	rootPage.AddPage("gameview", gameFrame, true, *flagPlay)
	rootPage.AddPage("summary", ui.CreateCenteredForm(summaryCard, 50), true, false)

	if *flagPlay {
		startGame(setupUI.Config())
	}

	err = app.SetRoot(rootPage, true).Run()
	if stopGame != nil {
		stopGame()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromadrop: %s\n", err)
		os.Exit(1)
	}
}

// startGame replaces any running game with a new one and switches to the game view.
func startGame(gameCfg engine.GameConfig) {
	if stopGame != nil {
		stopGame()
	}
	ctx, cancel := context.WithCancel(context.Background())
	stopGame = cancel
	lastGame = gameCfg

	now := time.Now()
	game := engine.NewGame(gameCfg, gameCfg.NewRand(now), now)
	gameShell.Reset()
	gameShell.Show(game.Snapshot(now))
	rootPage.SwitchToPage("gameview")

	go func() {
		ticker := time.NewTicker(gameCfg.FrameInterval())
		defer ticker.Stop()
		final := engine.Run(ctx, game, gameShell, ticker.C)
		if ctx.Err() != nil {
			// superseded by another game or the app is exiting
			return
		}
		app.QueueUpdateDraw(func() {
			summaryCard.SetSnapshot(final)
			rootPage.SwitchToPage("summary")
		})
	}()
}
