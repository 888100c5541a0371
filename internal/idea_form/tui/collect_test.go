package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ideaform "github.com/capstone-ideas/ideagen-backend/internal/idea_form"
)

type fakeDriver struct {
	text       string
	selections [][]int
	selectErr  error

	selectCalls []SelectConfig
	infos       []string
}

func (f *fakeDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	f.selectCalls = append(f.selectCalls, cfg)
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	next := f.selections[0]
	f.selections = f.selections[1:]
	return next, nil
}

func (f *fakeDriver) TextArea(context.Context, TextAreaConfig) (string, error) {
	return f.text, nil
}

func (f *fakeDriver) Info(_ context.Context, msg string) error {
	f.infos = append(f.infos, msg)
	return nil
}

func TestCollect_CategoriesOnly(t *testing.T) {
	d := &fakeDriver{text: "help the school", selections: [][]int{{1, 4}}}

	in, err := Collect(context.Background(), d, ideaform.CategoriesOnly)
	require.NoError(t, err)

	assert.Equal(t, "help the school", in.PromptText)
	assert.Equal(t, []string{"Education", "Technology"}, in.Categories)
	assert.Nil(t, in.ProjectTypes)

	require.Len(t, d.selectCalls, 1)
	assert.Equal(t, 1, d.selectCalls[0].Min)
	assert.Equal(t, 8, d.selectCalls[0].Max)
	assert.Len(t, d.selectCalls[0].Options, 43)
}

func TestCollect_WithProjectTypes(t *testing.T) {
	d := &fakeDriver{selections: [][]int{{0}, {3}}}

	in, err := Collect(context.Background(), d, ideaform.WithProjectTypes)
	require.NoError(t, err)

	assert.Equal(t, []string{"Healthcare"}, in.Categories)
	assert.Equal(t, []string{"Game"}, in.ProjectTypes)
	require.Len(t, d.selectCalls, 2)
	assert.Equal(t, "Project types", d.selectCalls[1].Message)
	assert.NoError(t, ideaform.Validate(in, ideaform.WithProjectTypes))
}

func TestCollect_Aborted(t *testing.T) {
	d := &fakeDriver{selectErr: ErrAborted}

	_, err := Collect(context.Background(), d, ideaform.CategoriesOnly)
	assert.True(t, errors.Is(err, ErrAborted))
}

func TestNotifier(t *testing.T) {
	d := &fakeDriver{}
	Notifier(context.Background(), d).Notify(ideaform.SuccessNotification)

	assert.Equal(t, []string{"Success! Project title generated successfully."}, d.infos)
}

func TestIndicesOf(t *testing.T) {
	opts := []string{"a", "b", "c"}
	assert.Equal(t, []int{0, 2}, indicesOf(opts, []string{"c", "a"}))
	assert.Nil(t, indicesOf(opts, nil))
	assert.Equal(t, []string{"b"}, defaultsFromIndices(opts, []int{1, 7}))
}
