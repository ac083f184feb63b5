// Command pglob expands glob patterns against the filesystem and prints
// the matches, one per line.
//
//	pglob 'src/**/*.go'
//	pglob --no-follow --verbose '**/build'
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pathglob/pathglob"
	"github.com/pathglob/pathglob/path"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		noFollow  bool
		verbose   bool
		asPosix   bool
		asWindows bool
		countOnly bool
	)
	cmd := &cobra.Command{
		Use:   "pglob [flags] pattern...",
		Short: "Expand glob patterns against the filesystem",
		Long: `Expands each pattern against the filesystem and prints the matches.

'*' matches within a single path segment, a bare '**' segment matches
zero or more directory levels, and '\' escapes the following character.
Candidates that cannot be opened or statted (for example a
permission-denied subdirectory inside a '**' expansion) are skipped
rather than aborting the pattern; use --verbose to see them.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			format := path.Native
			switch {
			case asPosix:
				format = path.Posix
			case asWindows:
				format = path.Windows
			}
			g := pathglob.Globber{
				NoFollow: noFollow,
				Diag: func(p path.Path, err error) {
					log.WithField("path", p.String()).
						WithError(err).
						Debug("skipped during expansion")
				},
			}
			dirColor := color.New(color.FgBlue, color.Bold)
			total := 0
			for _, arg := range args {
				err := g.Expand(path.New(arg, format), func(p path.Path) bool {
					total++
					if countOnly {
						return true
					}
					if st, err := pathglob.Lstat(p); err == nil && st.IsDir() {
						dirColor.Fprintln(cmd.OutOrStdout(), p.String())
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), p.String())
					}
					return true
				})
				if err != nil {
					log.WithError(err).Errorf("%s", arg)
					return err
				}
			}
			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), total)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noFollow, "no-follow", false,
		"do not follow symbolic links during ** expansion")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log candidates skipped due to filesystem errors")
	cmd.Flags().BoolVar(&asPosix, "posix", false,
		"interpret patterns as POSIX paths regardless of host")
	cmd.Flags().BoolVar(&asWindows, "windows", false,
		"interpret patterns as Windows paths regardless of host")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false,
		"print only the number of matches")
	cmd.MarkFlagsMutuallyExclusive("posix", "windows")
	return cmd
}
