package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Environment variables passed down to extension binaries, so they can
// honor the global flags without re-parsing the command line.
const (
	EnvLedgerDir       = "BKR_LEDGER_DIR"
	EnvDefaultCurrency = "BKR_DEFAULT_CURRENCY"
	EnvVerbose         = "BKR_VERBOSE"
)

// RunExtension attempts to find and execute an external bkr-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and
// executed, and (false, 0) when there is no such binary in PATH.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bkr-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		vlog("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvLedgerDir+"="+*ledgerDir)
	cmd.Env = append(cmd.Env, EnvDefaultCurrency+"="+*defaultCurrency)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
