package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "relay"
	app.Usage = "manage GAS Relay contracts as a paymaster"
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config, c",
			Usage:  "YAML configuration `FILE`",
			EnvVar: "RELAY_CONFIG",
		},
		cli.StringFlag{
			Name:   "rpc, r",
			Usage:  "Neo RPC server `ENDPOINT`",
			EnvVar: "RELAY_RPC",
		},
		cli.StringFlag{
			Name:   "wallet, w",
			Usage:  "NEP-6 wallet `FILE` with the paymaster account",
			EnvVar: "RELAY_WALLET",
		},
		cli.StringFlag{
			Name:   "address, a",
			Usage:  "wallet account `ADDRESS` (default account if empty)",
			EnvVar: "RELAY_ADDRESS",
		},
		cli.StringFlag{
			Name:   "password, p",
			Usage:  "wallet account `PASSWORD`",
			EnvVar: "RELAY_PASSWORD",
		},
		cli.StringFlag{
			Name:   "relay",
			Usage:  "Relay contract `ADDRESS`",
			EnvVar: "RELAY_CONTRACT",
		},
		cli.StringFlag{
			Name:   "deposit-contract",
			Usage:  "Deposit contract `ADDRESS`",
			EnvVar: "RELAY_DEPOSIT_CONTRACT",
		},
		cli.StringFlag{
			Name:   "sample-contract",
			Usage:  "Sample contract `ADDRESS` shown by status",
			EnvVar: "RELAY_SAMPLE_CONTRACT",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "logging `LEVEL` [debug|info|warn|error]",
			EnvVar: "RELAY_LOG_LEVEL",
		},
	}

	app.Before = setup
	app.After = teardown

	app.Commands = []cli.Command{
		{
			Name:      "deploy",
			Usage:     "deploy Relay, Deposit and Sample contracts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contracts, d",
					Usage: "*`DIR` with relay, deposit and sample subdirectories of compiled contracts",
				},
				cli.StringFlag{
					Name:  "admin",
					Usage: " administrator `ADDRESS` (wallet account if empty)",
				},
				cli.BoolFlag{
					Name:  "no-sample",
					Usage: " skip Sample contract deployment",
				},
				cli.StringSliceFlag{
					Name:  "forwarder",
					Usage: " additional trusted forwarder `ADDRESS` of the Sample contract",
				},
			},
			Action: runDeploy,
		},
		{
			Name:      "register",
			Usage:     "bind target contract to its owner",
			ArgsUsage: "TARGET OWNER",
			Action:    runRegister,
		},
		{
			Name:      "deposit",
			Usage:     "transfer GAS to the Relay contract and credit it to the owner",
			ArgsUsage: "OWNER",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "amount",
					Usage: "*GAS `AMOUNT` to deposit",
				},
				cli.BoolFlag{
					Name:  "helper",
					Usage: " deposit through the Deposit contract",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "call",
			Usage:     "invoke target contract method on behalf of the caller",
			ArgsUsage: "TARGET METHOD [ARGS...]\n   ARGS are [int:|bool:|hash160:|bytes:|str:]VALUE, bytes are base58 encoded",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller",
					Usage: "*original caller `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "gas",
					Value: "0",
					Usage: " GAS `AMOUNT` charged to the owner for the call",
				},
				cli.StringFlag{
					Name:  "pay",
					Value: "0",
					Usage: " GAS `AMOUNT` paid to the target from the relay purse",
				},
			},
			Action: runCall,
		},
		{
			Name:      "set-fee-rate",
			Usage:     "set fee rate in parts per thousand of the gas amount",
			ArgsUsage: "RATE",
			Action:    runSetFeeRate,
		},
		{
			Name:   "claim-fee",
			Usage:  "transfer collected fees to the administrator",
			Action: runClaimFee,
		},
		{
			Name:  "status",
			Usage: "show Relay contract state",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner",
					Usage: " show balance of the owner `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "max-targets",
					Value: 100,
					Usage: " maximum `NUMBER` of registered targets to show",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "cost",
			Usage:     "estimate owner balance debit of a call without connecting to the network",
			ArgsUsage: "GAS",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "rate",
					Usage: "*fee `RATE` in parts per thousand",
				},
			},
			Action: runCost,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
