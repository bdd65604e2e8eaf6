package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/games/dodger"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, after the config
file, the difficulty preset and the audio flags have been applied.
The mode's rules are printed as a comment header. The output is valid
YAML and can be saved as a starting point:

  dodger config > ~/.arcade/configs/dodger.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	mode, err := resolveMode(args)
	if err != nil {
		return err
	}

	cfg, source, err := loadConfig(flagSettings())
	if err != nil {
		return err
	}

	data, err := config.MarshalYAML(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, rulesHeader(mode, source, cfg))
	_, err = out.Write(data)
	return err
}

// rulesHeader describes where cfg came from and what the mode does with it.
func rulesHeader(mode, source string, cfg config.DodgerConfig) string {
	m, _ := dodger.ModeByID(mode)
	r := dodger.RulesFor(m, cfg)
	restart := "restart with R"
	if !r.CanRestart() {
		restart = fmt.Sprintf("exits %.1fs after game over", r.ExitDelay)
	}
	return fmt.Sprintf("# source: %s\n# mode: %s (lives %d, shooting %t, typed circles %t, %s)\n",
		source, mode, r.Lives, r.Shooting, r.Typed, restart)
}
