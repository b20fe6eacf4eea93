package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sonarguard/internal/alarm"
	"sonarguard/internal/app"
	"sonarguard/internal/config"
	"sonarguard/internal/sensor"
)

var (
	flagDemo     bool
	flagTUI      bool
	flagReplay   string
	flagTrigger  string
	flagEcho     string
	flagReadyLED string
	flagAlarmLED string
	flagBuzzer   string
	flagFar      int
	flagNear     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sonarguard",
		Short: "Sonarguard - ultrasonic proximity alarm",
		Long: `Sonarguard watches a single HC-SR04 ultrasonic rangefinder and raises a
blink/beep alarm whose cadence ramps as a target approaches. Out of the
attention zone it shows a steady ready light.

Real sensing requires GPIO access (run on the device, usually as root or
in the gpio group). Use --demo for a simulated sensor with no hardware.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with a simulated rangefinder (no GPIO required)")
	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "Show the terminal dashboard instead of the raw status stream")
	rootCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay distances from a trace file, one reading per line")
	rootCmd.Flags().StringVar(&flagTrigger, "trigger", "GPIO23", "GPIO pin wired to the sensor trigger line")
	rootCmd.Flags().StringVar(&flagEcho, "echo", "GPIO24", "GPIO pin wired to the sensor echo line")
	rootCmd.Flags().StringVar(&flagReadyLED, "ready-led", "GPIO17", "GPIO pin for the ready indicator")
	rootCmd.Flags().StringVar(&flagAlarmLED, "alarm-led", "GPIO27", "GPIO pin for the alarm indicator")
	rootCmd.Flags().StringVar(&flagBuzzer, "buzzer", "GPIO22", "GPIO pin for the buzzer")
	rootCmd.Flags().IntVar(&flagFar, "far", config.FarDistanceMM, "Attention zone outer boundary in mm")
	rootCmd.Flags().IntVar(&flagNear, "near", config.NearDistanceMM, "Cadence saturation boundary in mm")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagNear <= 0 || flagFar <= flagNear {
		return fmt.Errorf("invalid zone boundaries: near=%d far=%d (need 0 < near < far)", flagNear, flagFar)
	}

	mapper := alarm.Mapper{
		FarMM:       flagFar,
		NearMM:      flagNear,
		MaxPeriodMS: config.MaxPeriodMS,
		MinPeriodMS: config.MinPeriodMS,
		ToneMinHz:   config.ToneMinHz,
		ToneMaxHz:   config.ToneMaxHz,
		OnFraction:  config.OnFraction,
	}

	hardware := !flagDemo && flagReplay == ""

	var rf sensor.Rangefinder
	source := "hc-sr04"
	switch {
	case flagReplay != "":
		f, err := os.Open(flagReplay)
		if err != nil {
			return fmt.Errorf("open replay trace: %w", err)
		}
		defer f.Close()
		rf = sensor.NewReplay(f)
		source = "replay"
	case flagDemo:
		rf = sensor.NewSim()
		source = "demo"
	default:
		hw, err := sensor.NewHCSR04(flagTrigger, flagEcho)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "Ultrasonic sensing requires GPIO access on the device.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./sonarguard")
			fmt.Fprintln(os.Stderr, "  ./sonarguard --demo    (simulated sensor, no hardware needed)")
			return err
		}
		rf = hw
	}

	panel := alarm.NewPanel()
	ready, alarmLED, tone := panel.Ready(), panel.Alarm(), panel.Tone()

	if hardware {
		gpioReady, err := alarm.NewGPIOIndicator(flagReadyLED)
		if err != nil {
			return err
		}
		gpioAlarm, err := alarm.NewGPIOIndicator(flagAlarmLED)
		if err != nil {
			return err
		}
		gpioTone, err := alarm.NewPWMTone(flagBuzzer)
		if err != nil {
			return err
		}
		if flagTUI {
			// Dashboard lamps mirror the physical outputs.
			ready = alarm.TeeIndicator(gpioReady, ready)
			alarmLED = alarm.TeeIndicator(gpioAlarm, alarmLED)
			tone = alarm.TeeTone(gpioTone, tone)
		} else {
			ready, alarmLED, tone = gpioReady, gpioAlarm, gpioTone
		}
	}

	driver := alarm.NewDriver(ready, alarmLED, tone)
	window := sensor.NewWindow(config.WindowSize)

	if flagTUI {
		loop := alarm.NewLoop(rf, window, mapper, driver, nil)
		model := app.New(loop, panel, window, mapper, source)

		p := tea.NewProgram(model, tea.WithAltScreen())
		model.StartLoop(p)

		_, err := p.Run()
		return err
	}

	loop := alarm.NewLoop(rf, window, mapper, driver, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	loop.Run(ctx)
	return nil
}
