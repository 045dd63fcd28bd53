// Command beaconlc is an inspection harness for the beacon light-client
// verification core. It is not a relayer: each invocation decodes a
// checkpoint and, depending on the command, one or more further JSON-encoded
// updates from disk, drives them through a fresh in-memory
// LightClient, and prints the resulting event or error. Useful for replaying
// recorded fixtures against the core by hand.
//
// Usage:
//
//	beaconlc checkpoint --update checkpoint.json
//	beaconlc submit --checkpoint checkpoint.json --update update.json
//	beaconlc submit-exec --checkpoint checkpoint.json --update exec_update.json
//	beaconlc status --checkpoint checkpoint.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/eth2030/beaconlc/consensus"
	"github.com/eth2030/beaconlc/light"
	stdlog "github.com/eth2030/beaconlc/log"
)

var version = "v0.1.0-dev"

var logger = stdlog.Default().Module("cmd")

func main() {
	app := &cli.App{
		Name:    "beaconlc",
		Usage:   "drive the beacon light-client core against recorded fixtures",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "chainspec",
				Value: "mainnet",
				Usage: "chain spec to calibrate the client with (mainnet, minimal)",
			},
		},
		Commands: []*cli.Command{
			checkpointCommand,
			submitCommand,
			submitExecCommand,
			statusCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveSpec(c *cli.Context) (*light.ChainSpec, error) {
	switch c.String("chainspec") {
	case "mainnet", "":
		return light.MainnetSpec(), nil
	case "minimal":
		return light.MinimalSpec(), nil
	default:
		return nil, fmt.Errorf("unknown chainspec %q (want mainnet or minimal)", c.String("chainspec"))
	}
}

func decodeFile[T any](path string) (T, error) {
	var v T
	f, err := os.Open(path)
	if err != nil {
		return v, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return v, fmt.Errorf("decoding %s: %w", path, err)
	}
	return v, nil
}

// newClient builds a fresh LightClient and, if checkpointPath is non-empty,
// bootstraps it by replaying the checkpoint update found there.
func newClient(c *cli.Context, checkpointPath string) (*light.LightClient, error) {
	spec, err := resolveSpec(c)
	if err != nil {
		return nil, err
	}
	lc := light.NewLightClient(spec, light.NewMemoryRuntime())
	if checkpointPath == "" {
		return lc, nil
	}
	update, err := decodeFile[light.CheckpointUpdate](checkpointPath)
	if err != nil {
		return nil, err
	}
	if err := lc.ForceCheckpoint(update); err != nil {
		return nil, fmt.Errorf("replaying checkpoint: %w", err)
	}
	return lc, nil
}

var checkpointCommand = &cli.Command{
	Name:  "checkpoint",
	Usage: "bootstrap a fresh store from a CheckpointUpdate fixture",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "update", Required: true, Usage: "path to a JSON-encoded CheckpointUpdate"},
	},
	Action: func(c *cli.Context) error {
		spec, err := resolveSpec(c)
		if err != nil {
			return err
		}
		update, err := decodeFile[light.CheckpointUpdate](c.String("update"))
		if err != nil {
			return err
		}
		lc := light.NewLightClient(spec, light.NewMemoryRuntime())
		if err := lc.ForceCheckpoint(update); err != nil {
			return fmt.Errorf("ForceCheckpoint rejected: %w", err)
		}
		root := lc.Store().LatestFinalizedBlockRoot()
		logger.Info("checkpoint accepted", "block_root", fmt.Sprintf("%x", root))
		fmt.Printf("ok: bootstrapped at block_root=0x%x\n", root)
		return nil
	},
}

var submitCommand = &cli.Command{
	Name:  "submit",
	Usage: "replay a checkpoint then verify a light-client Update against it",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "checkpoint", Required: true, Usage: "path to a JSON-encoded CheckpointUpdate"},
		&cli.StringFlag{Name: "update", Required: true, Usage: "path to a JSON-encoded Update"},
	},
	Action: func(c *cli.Context) error {
		lc, err := newClient(c, c.String("checkpoint"))
		if err != nil {
			return err
		}
		update, err := decodeFile[light.Update](c.String("update"))
		if err != nil {
			return err
		}
		if err := lc.Submit(update); err != nil {
			return fmt.Errorf("Submit rejected: %w", err)
		}
		root := lc.Store().LatestFinalizedBlockRoot()
		logger.Info("update accepted", "finalized_block_root", fmt.Sprintf("%x", root))
		fmt.Printf("ok: finalized_block_root=0x%x\n", root)
		return nil
	},
}

var submitExecCommand = &cli.Command{
	Name:  "submit-exec",
	Usage: "replay a checkpoint then anchor an execution-layer header to it",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "checkpoint", Required: true, Usage: "path to a JSON-encoded CheckpointUpdate"},
		&cli.StringFlag{Name: "update", Required: true, Usage: "path to a JSON-encoded ExecutionHeaderUpdate"},
	},
	Action: func(c *cli.Context) error {
		lc, err := newClient(c, c.String("checkpoint"))
		if err != nil {
			return err
		}
		update, err := decodeFile[light.ExecutionHeaderUpdate](c.String("update"))
		if err != nil {
			return err
		}
		if err := lc.SubmitExecutionHeader(update); err != nil {
			return fmt.Errorf("SubmitExecutionHeader rejected: %w", err)
		}
		state, _ := lc.Store().LatestExecutionState()
		logger.Info("execution header accepted", "block_hash", fmt.Sprintf("%x", state.BlockHash), "block_number", state.BlockNumber)
		fmt.Printf("ok: block_number=%d block_hash=0x%x\n", state.BlockNumber, state.BlockHash)
		return nil
	},
}

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "replay a checkpoint (and optional updates) and print the resulting store state",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "checkpoint", Required: true, Usage: "path to a JSON-encoded CheckpointUpdate"},
		&cli.StringSliceFlag{Name: "update", Usage: "path to a JSON-encoded Update, may be repeated, applied in order"},
		&cli.Uint64Flag{Name: "genesis-time", Usage: "unix genesis timestamp; when set, also prints the current wall-clock slot"},
	},
	Action: func(c *cli.Context) error {
		lc, err := newClient(c, c.String("checkpoint"))
		if err != nil {
			return err
		}
		for _, path := range c.StringSlice("update") {
			update, err := decodeFile[light.Update](path)
			if err != nil {
				return err
			}
			if err := lc.Submit(update); err != nil {
				return fmt.Errorf("Submit(%s) rejected: %w", path, err)
			}
		}

		store := lc.Store()
		root := store.LatestFinalizedBlockRoot()
		state, ok := store.FinalizedBeaconState(root)
		fmt.Printf("bootstrapped:       %v\n", store.Bootstrapped())
		fmt.Printf("latest block_root:  0x%x\n", root)
		if ok {
			fmt.Printf("latest slot:        %d\n", state.Slot)
		}
		if execState, ok := store.LatestExecutionState(); ok {
			fmt.Printf("execution block:    %d (0x%x)\n", execState.BlockNumber, execState.BlockHash)
		} else {
			fmt.Printf("execution block:    none\n")
		}

		if genesisTime := c.Uint64("genesis-time"); genesisTime != 0 {
			consensusCfg := consensus.DefaultConfig()
			if c.String("chainspec") == "minimal" {
				consensusCfg = consensus.QuickSlotsConfig()
			}
			clock := consensus.NewSlotClock(genesisTime, consensusCfg)
			now := uint64(time.Now().Unix())
			fmt.Printf("wall-clock slot:    %d (epoch %d)\n", clock.CurrentSlot(now), clock.CurrentEpoch(now))
		}
		return nil
	},
}
