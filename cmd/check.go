package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/churnlens/internal/form"
)

// errUndeclaredFeatures fails the check when the classifier cannot be
// used for any submission.
var errUndeclaredFeatures = errors.New("classifier declares no feature names")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the model and dataset and report what was found",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.log.Sync()

		out := cmd.OutOrStdout()
		info := s.artifacts.Classifier.Describe()

		kind := string(info.Kind)
		if info.Trees > 0 {
			kind = fmt.Sprintf("%s, %d trees", kind, info.Trees)
		}
		fmt.Fprintf(out, "%-12s %s (%s)\n", "model", s.cfg.ModelPath, kind)
		if info.Declared {
			fmt.Fprintf(out, "%-12s %d declared\n", "features", info.Features)
		} else {
			fmt.Fprintf(out, "%-12s none declared (%d inputs)\n", "features", info.Features)
		}
		fmt.Fprintf(out, "%-12s %s (%d rows)\n", "dataset", s.cfg.DatasetPath, s.artifacts.Dataset.Len())

		fmt.Fprintln(out, strings.Repeat("─", 40))
		for _, name := range []string{form.Education, form.JobLevel} {
			f, _ := s.artifacts.Schema.Field(name)
			fmt.Fprintf(out, "%-12s %s\n", name, strings.Join(f.Options, ", "))
			extra, missing := s.artifacts.Schema.OutOfDomain(name)
			if len(extra) > 0 || len(missing) > 0 {
				fmt.Fprintf(out, "%-12s outside 1..5: [%s], absent: [%s]\n", "", joinInts(extra), joinInts(missing))
			}
		}

		if !info.Declared {
			return errUndeclaredFeatures
		}
		return nil
	},
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
