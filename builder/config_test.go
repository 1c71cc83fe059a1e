// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order
// and that nil schemes are ignored (no-op).
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	// 1. Default configuration: IDFn should be DefaultIDFn
	cfgDefault := newBuilderConfig()
	// call idFn on a sample index
	if got := cfgDefault.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs should override to SymbolIDFn
	cfgSymbol := newBuilderConfig(WithSymbolIDs())
	if got := cfgSymbol.idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	// 3. WithSymbNumb should override to SymbolNumberIDFn
	cfgPrefix := newBuilderConfig(WithSymbNumb("V"))
	if got := cfgPrefix.idFn(12); got != "V12" {
		t.Errorf("WithSymbNumb: expected \"V12\", got %q", got)
	}

	// 4. The last scheme wins
	cfgLast := newBuilderConfig(WithSymbolIDs(), WithSymbNumb("n"))
	if got := cfgLast.idFn(3); got != "n3" {
		t.Errorf("override order: expected \"n3\", got %q", got)
	}

	// 5. Nil IDFn in WithIDScheme should be ignored
	cfgNil := newBuilderConfig(WithIDScheme(nil))
	if got := cfgNil.idFn(5); got != "5" {
		t.Errorf("WithIDScheme(nil): expected default \"5\", got %q", got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and ignoring nil in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) should be no-op
	cfgRandNil := newBuilderConfig(WithRand(nil))
	if cfgRandNil.rng != nil {
		t.Errorf("WithRand(nil): expected nil, got %v", cfgRandNil.rng)
	}

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestWeightFnOptions verifies that weight function options apply correctly,
// override in order, and ignore nil inputs.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	const constVal = 9
	const min, max = int64(2), int64(4)
	rng := rand.New(rand.NewSource(1))

	// 1. Default configuration: weightFn should be DefaultWeightFn
	cfgDefault := newBuilderConfig()
	if w := cfgDefault.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("default weightFn(nil): expected %d, got %d", DefaultEdgeWeight, w)
	}

	// 2. WithConstantWeight should override to constant value
	cfgConst := newBuilderConfig(WithConstantWeight(constVal))
	if w := cfgConst.weightFn(nil); w != constVal {
		t.Errorf("WithConstantWeight(nil): expected %d, got %d", constVal, w)
	}
	if w := cfgConst.weightFn(rng); w != constVal {
		t.Errorf("WithConstantWeight(rng): expected %d, got %d", constVal, w)
	}

	// 3. WithUniformWeight should override to uniform sampler
	cfgUni := newBuilderConfig(WithUniformWeight(min, max))
	// nil rng yields default
	if w := cfgUni.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("WithUniformWeight(nil rng): expected default %d, got %d", DefaultEdgeWeight, w)
	}
	// seeded rng yields value in [min,max]
	val := cfgUni.weightFn(rng)
	if val < min || val > max {
		t.Errorf("WithUniformWeight(rng): expected in [%d,%d], got %d", min, max, val)
	}

	// 4. Override order: last option wins
	cfgOverride := newBuilderConfig(WithConstantWeight(1), WithUniformWeight(min, max))
	val2 := cfgOverride.weightFn(rng)
	if val2 < min || val2 > max {
		t.Errorf("override order: expected uniform in [%d,%d], got %d", min, max, val2)
	}

	// 5. Nil WeightFn in WithWeightFn should be ignored
	cfgNil := newBuilderConfig(WithWeightFn(nil))
	if w := cfgNil.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("WithWeightFn(nil): expected default %d, got %d", DefaultEdgeWeight, w)
	}
}

// TestRandomRangeOptions verifies RandomEdge range defaults, overrides and panics.
func TestRandomRangeOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.idMin != 8 || cfg.idMax != 16 || cfg.wMin != 1 || cfg.wMax != 20 {
		t.Errorf("defaults: got ids [%d,%d] weights [%d,%d]", cfg.idMin, cfg.idMax, cfg.wMin, cfg.wMax)
	}

	cfg = newBuilderConfig(WithIDRange(1, 2), WithWeightRange(0, 0))
	if cfg.idMin != 1 || cfg.idMax != 2 || cfg.wMin != 0 || cfg.wMax != 0 {
		t.Errorf("overrides: got ids [%d,%d] weights [%d,%d]", cfg.idMin, cfg.idMax, cfg.wMin, cfg.wMax)
	}

	for name, fn := range map[string]func(){
		"WithIDRange(3,3)":      func() { WithIDRange(3, 3) },
		"WithIDRange(-1,5)":     func() { WithIDRange(-1, 5) },
		"WithWeightRange(-1,2)": func() { WithWeightRange(-1, 2) },
		"WithWeightRange(5,4)":  func() { WithWeightRange(5, 4) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

// TestPartitionPrefixDefaults verifies empty prefixes fall back to L/R.
func TestPartitionPrefixDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("", "B"))
	if cfg.leftPrefix != "L" || cfg.rightPrefix != "B" {
		t.Errorf("prefixes: got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}
}
