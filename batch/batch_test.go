package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botirk38/docsim"
	"github.com/botirk38/docsim/batch"
	"github.com/botirk38/docsim/classifier"
	"github.com/botirk38/docsim/logging"
	"github.com/botirk38/docsim/types"
)

// fakeComparer returns canned similarities keyed by "labelA|labelB".
type fakeComparer struct {
	mu     sync.Mutex
	scores map[string]float64
	calls  int
}

func (f *fakeComparer) Compare(_ context.Context, a, b types.Document) types.Verdict {
	f.mu.Lock()
	f.calls++
	score, ok := f.scores[a.Label+"|"+b.Label]
	f.mu.Unlock()
	if !ok {
		return classifier.Classify(a.Label, b.Label, nil, classifier.Percentage(50))
	}
	return classifier.Classify(a.Label, b.Label, &score, classifier.Percentage(50))
}

func docs(labels ...string) []types.Document {
	out := make([]types.Document, len(labels))
	for i, l := range labels {
		out[i] = types.Document{Label: l, Text: l}
	}
	return out
}

func TestNewRunnerRequiresComparer(t *testing.T) {
	_, err := batch.NewRunner(nil, 2, nil)
	assert.ErrorIs(t, err, batch.ErrNoEngine)
}

func TestAgainstSortsAndCuts(t *testing.T) {
	fake := &fakeComparer{scores: map[string]float64{
		"q|a": 0.2,
		"q|b": 0.9,
		"q|c": 0.5,
		"q|d": 0.9,
	}}
	runner, err := batch.NewRunner(fake, 3, logging.Discard())
	require.NoError(t, err)

	query := types.Document{Label: "q"}
	corpus := docs("a", "b", "c", "d", "q", "e")

	verdicts, err := runner.Against(context.Background(), query, corpus, 3)
	require.NoError(t, err)
	require.Len(t, verdicts, 3)
	assert.Equal(t, "b", verdicts[0].LabelB)
	assert.Equal(t, "d", verdicts[1].LabelB)
	assert.Equal(t, "c", verdicts[2].LabelB)
	assert.Equal(t, 90.0, verdicts[0].SimilarityPercentage)

	// q itself is excluded, e is undetermined and skipped
	assert.Equal(t, 5, fake.calls)

	all, err := runner.Against(context.Background(), query, corpus, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestAllPairs(t *testing.T) {
	fake := &fakeComparer{scores: map[string]float64{
		"a|b": 0.1,
		"a|c": 0.6,
		"b|c": 0.3,
	}}
	runner, err := batch.NewRunner(fake, 2, nil)
	require.NoError(t, err)

	verdicts, err := runner.AllPairs(context.Background(), docs("c", "a", "b"))
	require.NoError(t, err)
	require.Len(t, verdicts, 3)

	got := make([]string, len(verdicts))
	for i, v := range verdicts {
		got[i] = v.LabelA + "|" + v.LabelB
	}
	assert.Equal(t, []string{"a|b", "a|c", "b|c"}, got)
	assert.True(t, verdicts[1].IsPlagiarism)
	assert.False(t, verdicts[0].IsPlagiarism)
}

func TestAllPairsTooFewDocuments(t *testing.T) {
	runner, err := batch.NewRunner(&fakeComparer{}, 2, nil)
	require.NoError(t, err)

	verdicts, err := runner.AllPairs(context.Background(), docs("only"))
	require.NoError(t, err)
	assert.Empty(t, verdicts)
}

func TestEvaluate(t *testing.T) {
	fake := &fakeComparer{scores: map[string]float64{
		"tp|x": 0.8, // expected plagiarism, flagged
		"fn|x": 0.1, // expected plagiarism, missed
		"fp|x": 0.7, // expected clean, flagged
		"tn|x": 0.2, // expected clean, clean
		"t2|x": 0.6, // expected plagiarism, flagged
	}}
	runner, err := batch.NewRunner(fake, 4, nil)
	require.NoError(t, err)

	x := types.Document{Label: "x"}
	pairs := []batch.LabelledPair{
		{A: types.Document{Label: "tp"}, B: x, Plagiarism: true},
		{A: types.Document{Label: "fn"}, B: x, Plagiarism: true},
		{A: types.Document{Label: "fp"}, B: x, Plagiarism: false},
		{A: types.Document{Label: "tn"}, B: x, Plagiarism: false},
		{A: types.Document{Label: "t2"}, B: x, Plagiarism: true},
		{A: types.Document{Label: "unknown"}, B: x, Plagiarism: true},
	}

	eval, err := runner.Evaluate(context.Background(), pairs)
	require.NoError(t, err)

	assert.Equal(t, 2, eval.TruePositives)
	assert.Equal(t, 1, eval.FalseNegatives)
	assert.Equal(t, 1, eval.FalsePositives)
	assert.Equal(t, 1, eval.TrueNegatives)
	assert.Equal(t, 1, eval.Skipped)
	assert.Len(t, eval.Verdicts, 5)

	assert.InDelta(t, 2.0/3.0, eval.TPR, 1e-9)
	assert.InDelta(t, 0.5, eval.FPR, 1e-9)
	assert.InDelta(t, (1+2.0/3.0-0.5)/2, eval.AUC, 1e-9)
}

func TestEvaluateEmptyClasses(t *testing.T) {
	runner, err := batch.NewRunner(&fakeComparer{}, 1, nil)
	require.NoError(t, err)

	eval, err := runner.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, eval.TPR)
	assert.Equal(t, 0.0, eval.FPR)
	assert.Equal(t, 0.5, eval.AUC)
}

func TestCancelledContext(t *testing.T) {
	runner, err := batch.NewRunner(&fakeComparer{}, 2, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runner.AllPairs(ctx, docs("a", "b", "c"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithEngine(t *testing.T) {
	engine, err := docsim.New()
	require.NoError(t, err)
	defer engine.Close()

	runner, err := batch.NewRunner(engine, 2, nil)
	require.NoError(t, err)

	corpus := []types.Document{
		{Label: "copy.txt", Text: "The cat sat on the mat."},
		{Label: "other.txt", Text: "Stock markets fell sharply today."},
		{Label: "close.txt", Text: "The cat sat on a mat."},
	}
	query := types.Document{Label: "query.txt", Text: "the cat sat on the mat"}

	verdicts, err := runner.Against(context.Background(), query, corpus, 2)
	require.NoError(t, err)
	require.Len(t, verdicts, 2)
	assert.Equal(t, "copy.txt", verdicts[0].LabelB)
	assert.Equal(t, 100.0, verdicts[0].SimilarityPercentage)
	assert.Equal(t, types.MatchExact, verdicts[0].Kind)
	assert.Equal(t, "close.txt", verdicts[1].LabelB)
}

func TestPool(t *testing.T) {
	pool := batch.NewPool(3, nil)

	var count atomic.Int32
	for range 50 {
		require.NoError(t, pool.Submit(func() { count.Add(1) }))
	}
	pool.Wait()
	assert.Equal(t, int32(50), count.Load())

	pool.Stop()
	assert.ErrorIs(t, pool.Submit(func() {}), batch.ErrPoolStopped)
}

func TestLoadPairs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta"), 0o644))

	path := filepath.Join(dir, "pairs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[pair]]
a = "a.txt"
b = "b.txt"
plagiarism = true

[[pair]]
a = "b.txt"
b = "a.txt"
`), 0o644))

	pairs, err := batch.LoadPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "a.txt", pairs[0].A.Label)
	assert.Equal(t, "beta", pairs[0].B.Text)
	assert.True(t, pairs[0].Plagiarism)
	assert.False(t, pairs[1].Plagiarism)
}

func TestLoadPairsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := batch.LoadPairs(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[pair]]\na = \"x.txt\"\n"), 0o644))
	_, err = batch.LoadPairs(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "nofile.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[pair]]\na = \"x.txt\"\nb = \"y.txt\"\n"), 0o644))
	_, err = batch.LoadPairs(path)
	assert.Error(t, err)
}
