package bins_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/lvlbin/bins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)

	return ts.UTC()
}

// TestCutTime_ThreeDays pins the nanosecond edge math for three
// consecutive days: the lowest edge is padded down by 0.1% of the span
// (172.8 s here) and the interior edges land on exact 8-hour marks.
func TestCutTime_ThreeDays(t *testing.T) {
	data := []time.Time{
		day(t, "2013-01-01"),
		day(t, "2013-01-02"),
		day(t, "2013-01-03"),
	}
	opts := bins.DefaultOptions()

	res, err := bins.CutTime(data, 3, &opts)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, res.Codes)

	require.Len(t, res.Breaks, 4)
	assert.Equal(t, time.Date(2012, 12, 31, 23, 57, 7, 200000000, time.UTC), res.Breaks[0])
	assert.Equal(t, time.Date(2013, 1, 1, 16, 0, 0, 0, time.UTC), res.Breaks[1])
	assert.Equal(t, time.Date(2013, 1, 2, 8, 0, 0, 0, time.UTC), res.Breaks[2])
	assert.Equal(t, day(t, "2013-01-03"), res.Breaks[3])

	require.Len(t, res.Categories, 3)
	assert.Equal(t, res.Breaks[0], res.Categories[0].Left, "no inclusive-lowest nudge without the option")
	assert.Equal(t, res.Breaks[1], res.Categories[0].Right)
	assert.True(t, res.Categories[1].Contains(data[1]))
}

// TestCutTimeBreaks_Explicit uses caller edges verbatim.
func TestCutTimeBreaks_Explicit(t *testing.T) {
	data := []time.Time{day(t, "2012-12-13"), day(t, "2012-12-15")}
	breaks := []time.Time{day(t, "2012-12-12"), day(t, "2012-12-14"), day(t, "2012-12-16")}
	opts := bins.DefaultOptions()

	res, err := bins.CutTimeBreaks(data, breaks, &opts)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, res.Codes)
	assert.Equal(t, breaks, res.Breaks, "explicit edges pass through untouched")
	require.Len(t, res.Categories, 2)
	assert.Equal(t, breaks[0], res.Categories[0].Left)
	assert.Equal(t, breaks[1], res.Categories[0].Right)
}

// TestCutTimeBreaks_OutOfRange sends values beyond the covered span to
// the missing sentinel.
func TestCutTimeBreaks_OutOfRange(t *testing.T) {
	data := []time.Time{
		day(t, "2013-01-02"),
		day(t, "2013-01-03"),
		day(t, "2013-01-04"),
		day(t, "2013-01-05"),
		day(t, "2013-01-06"),
	}
	breaks := []time.Time{day(t, "2013-01-01"), day(t, "2013-01-02")}
	opts := bins.DefaultOptions()

	res, err := bins.CutTimeBreaks(data, breaks, &opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, bins.CodeMissing, bins.CodeMissing, bins.CodeMissing, bins.CodeMissing}, res.Codes)
}

// TestCutTime_ZeroIsMissing treats the zero time.Time as the temporal
// NaN: it never reaches edge computation and its position stays at the
// sentinel.
func TestCutTime_ZeroIsMissing(t *testing.T) {
	data := []time.Time{
		day(t, "2013-01-01"),
		{},
		day(t, "2013-01-03"),
	}
	opts := bins.DefaultOptions()

	res, err := bins.CutTime(data, 2, &opts)
	require.NoError(t, err)
	assert.Equal(t, bins.CodeMissing, res.Codes[1])
	assert.GreaterOrEqual(t, res.Codes[0], 0)
	assert.GreaterOrEqual(t, res.Codes[2], 0)

	_, err = bins.CutTime([]time.Time{{}, {}}, 2, &opts)
	assert.ErrorIs(t, err, bins.ErrAllMissing)
}

// TestCutTime_ConstantInput keeps degenerate samples binnable: the
// edges expand around the single instant and every value lands in a
// real bucket.
func TestCutTime_ConstantInput(t *testing.T) {
	ts := day(t, "2013-06-01")
	data := []time.Time{ts, ts, ts}
	opts := bins.DefaultOptions()

	res, err := bins.CutTime(data, 2, &opts)
	require.NoError(t, err)
	for _, c := range res.Codes {
		assert.GreaterOrEqual(t, c, 0)
	}
	require.Len(t, res.Breaks, 3)
	assert.True(t, res.Breaks[0].Before(res.Breaks[1]))
	assert.True(t, res.Breaks[1].Before(res.Breaks[2]))
	assert.True(t, res.Breaks[0].Before(ts))
	assert.False(t, res.Breaks[2].Before(ts))
}

// TestQCutTime_Hours checks the quantile path: the median of four
// hourly timestamps is the exact 90-minute mark, orientation is fixed
// right-closed, and the first category dips one nanosecond below the
// minimum.
func TestQCutTime_Hours(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	data := []time.Time{
		epoch,
		epoch.Add(time.Hour),
		epoch.Add(2 * time.Hour),
		epoch.Add(3 * time.Hour),
	}
	opts := bins.DefaultOptions()

	res, err := bins.QCutTime(data, 2, &opts)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 1, 1}, res.Codes)
	require.Len(t, res.Breaks, 3)
	assert.Equal(t, epoch, res.Breaks[0], "raw lowest edge stays the minimum")
	assert.Equal(t, epoch.Add(90*time.Minute), res.Breaks[1])
	assert.Equal(t, epoch.Add(3*time.Hour), res.Breaks[2])

	require.Len(t, res.Categories, 2)
	assert.Equal(t, epoch.Add(-time.Nanosecond), res.Categories[0].Left)
	assert.Equal(t, epoch.Add(90*time.Minute), res.Categories[0].Right)
}

// TestQCutTime_AllMissing fails fast when every timestamp is zero.
func TestQCutTime_AllMissing(t *testing.T) {
	opts := bins.DefaultOptions()
	_, err := bins.QCutTime([]time.Time{{}, {}}, 2, &opts)
	assert.ErrorIs(t, err, bins.ErrAllMissing)
}

// TestCutTime_LabelModes covers codes-only and custom-label output.
func TestCutTime_LabelModes(t *testing.T) {
	data := []time.Time{
		day(t, "2013-01-01"),
		day(t, "2013-01-02"),
		day(t, "2013-01-03"),
	}

	opts := codesOpts()
	res, err := bins.CutTime(data, 3, &opts)
	require.NoError(t, err)
	assert.Nil(t, res.Categories)
	assert.Nil(t, res.Labels)
	assert.Equal(t, []int{0, 1, 2}, res.Codes)

	opts = bins.DefaultOptions()
	opts.Labels = bins.LabelCustom
	opts.CustomLabels = []string{"early", "mid", "late"}
	res, err = bins.CutTime(data, 3, &opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "mid", "late"}, res.Labels)
	assert.Nil(t, res.Categories)

	opts.CustomLabels = []string{"early", "late"}
	_, err = bins.CutTime(data, 3, &opts)
	assert.ErrorIs(t, err, bins.ErrLabelCount)
}

// TestCutTime_Validation mirrors the numeric taxonomy.
func TestCutTime_Validation(t *testing.T) {
	opts := bins.DefaultOptions()

	_, err := bins.CutTime(nil, 2, &opts)
	assert.ErrorIs(t, err, bins.ErrEmptyInput)

	_, err = bins.CutTime([]time.Time{day(t, "2013-01-01")}, 0, &opts)
	assert.ErrorIs(t, err, bins.ErrBadBinCount)

	_, err = bins.CutTimeBreaks([]time.Time{day(t, "2013-01-01")}, []time.Time{day(t, "2013-01-01")}, &opts)
	assert.ErrorIs(t, err, bins.ErrBadBinCount)

	breaks := []time.Time{day(t, "2013-01-02"), day(t, "2013-01-01")}
	_, err = bins.CutTimeBreaks([]time.Time{day(t, "2013-01-01")}, breaks, &opts)
	assert.ErrorIs(t, err, bins.ErrNotMonotonic)
}
