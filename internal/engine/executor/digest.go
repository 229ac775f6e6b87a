package executor

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/imago/internal/core/domain"
)

// OptionsDigest fingerprints the effective build configuration of a target
// so the journal can show whether two runs used the same inputs. It covers
// the no-cache toggle and the merged build args in key order.
func OptionsDigest(target *domain.Target, opts domain.BuildOptions) string {
	h := xxhash.New()

	_, _ = h.WriteString(target.Tag)
	if opts.NoCache {
		_, _ = h.WriteString("|no-cache")
	}

	args := opts.EffectiveArgs(target)
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		_, _ = h.WriteString("|" + k + "=" + args[k])
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
