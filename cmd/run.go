package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/bradford-hamilton/chippy/internal/pixelview"
	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
)

var (
	shiftQuirk     bool
	loadStoreQuirk bool
	rngSeed        int64
)

// runCmd runs the chippy virtual machine and waits for the window to close
// or for a fatal emulation error.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().BoolVar(&shiftQuirk, "shift-quirk", false, "SHR/SHL read and write Vx in place instead of Vy")
	runCmd.Flags().BoolVar(&loadStoreQuirk, "load-store-quirk", false, "Fx55/Fx65 leave I unchanged instead of post-incrementing it")
	runCmd.Flags().Int64Var(&rngSeed, "seed", 0, "seed for RND Vx, kk (0 selects a time-based seed)")
}

func runChippy(cmd *cobra.Command, args []string) {
	rom, err := ioutil.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading ROM: %v\n", err)
		os.Exit(1)
	}

	// pixelgl requires every window call to happen on the OS main thread,
	// so the run loop itself is driven from inside pixelgl.Run's callback.
	var runErr error
	pixelgl.Run(func() {
		runErr = runWithWindow(rom)
	})
	if runErr != nil {
		fmt.Printf("\nemulation stopped: %v\n", runErr)
		os.Exit(1)
	}
}

func runWithWindow(rom []byte) error {
	win, err := pixelview.NewWindow()
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	keypad := chip8.NewKeypad()
	input := pixelview.NewKeyboard(win.Window(), keypad)

	opts := []chip8.Option{chip8.WithKeyboard(keypad)}
	if shiftQuirk {
		opts = append(opts, chip8.WithShiftQuirk())
	}
	if loadStoreQuirk {
		opts = append(opts, chip8.WithLoadStoreQuirk())
	}
	if rngSeed != 0 {
		opts = append(opts, chip8.WithSeed(uint64(rngSeed)))
	}

	machine := chip8.NewMachine(opts...)
	if err := machine.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	logger := log.New(os.Stderr, "chippy: ", log.LstdFlags)
	loop := chip8.NewLoop(machine, win, logger)

	win.SetInputPoll(func() {
		if win.Closed() {
			loop.Stop()
			return
		}
		input.Poll()
	})

	return loop.Run()
}
