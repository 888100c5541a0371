package ideaform

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
)

func TestCatalogs(t *testing.T) {
	assert.Len(t, Categories, 43)
	assert.Len(t, ProjectTypes, 8)
	assert.True(t, IsCategory("Internet of Things (IoT)"))
	assert.False(t, IsCategory("internet of things (iot)"))
	assert.True(t, IsProjectType("Game"))
	assert.False(t, IsProjectType("Gaming"))
}

func TestValidate(t *testing.T) {
	nine := append([]string{}, Categories[:9]...)

	tests := []struct {
		name    string
		input   SubmissionInput
		variant Variant
		fields  []string
	}{
		{"one category", SubmissionInput{Categories: []string{"Gaming"}}, CategoriesOnly, nil},
		{"eight categories", SubmissionInput{Categories: Categories[:8]}, CategoriesOnly, nil},
		{"empty prompt is fine", SubmissionInput{PromptText: "", Categories: []string{"Gaming"}}, CategoriesOnly, nil},
		{"no categories", SubmissionInput{}, CategoriesOnly, []string{"categories"}},
		{"empty categories", SubmissionInput{Categories: []string{}}, CategoriesOnly, []string{"categories"}},
		{"nine categories", SubmissionInput{Categories: nine}, CategoriesOnly, []string{"categories"}},
		{"unknown category", SubmissionInput{Categories: []string{"Gaming", "Underwater Basket Weaving"}}, CategoriesOnly, []string{"categories"}},
		{"blank category", SubmissionInput{Categories: []string{""}}, CategoriesOnly, []string{"categories"}},
		{"types ignored by untyped variant", SubmissionInput{Categories: []string{"Gaming"}, ProjectTypes: []string{"nope"}}, CategoriesOnly, nil},
		{"typed ok", SubmissionInput{Categories: []string{"Gaming"}, ProjectTypes: []string{"Game"}}, WithProjectTypes, nil},
		{"typed without types", SubmissionInput{Categories: []string{"Gaming"}}, WithProjectTypes, []string{"types"}},
		{"typed unknown type", SubmissionInput{Categories: []string{"Gaming"}, ProjectTypes: []string{"Spreadsheet"}}, WithProjectTypes, []string{"types"}},
		{"typed both invalid", SubmissionInput{ProjectTypes: ProjectTypes[:0]}, WithProjectTypes, []string{"categories", "types"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input, tt.variant)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)

			var got []string
			for _, f := range []string{"categories", "types"} {
				if _, ok := verr.Fields[f]; ok {
					got = append(got, f)
				}
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	err := Validate(SubmissionInput{Categories: []string{"Gaming", "Knitting"}}, CategoriesOnly)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, `"Knitting" is not a known category`, verr.Fields["categories"])
	assert.True(t, strings.HasPrefix(err.Error(), "invalid input: categories: "))

	err = Validate(SubmissionInput{Categories: Categories[:9]}, CategoriesOnly)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "select at most 8 item(s)", verr.Fields["categories"])
}

func TestSubmissionInput_ToRequest(t *testing.T) {
	in := SubmissionInput{
		PromptText:   "  keep my\nwhitespace  ",
		Categories:   []string{"Technology", "Education"},
		ProjectTypes: []string{"Game"},
	}

	want := domain.GenerationRequest{
		Body:       "  keep my\nwhitespace  ",
		Categories: []string{"Technology", "Education"},
	}
	if diff := cmp.Diff(want, in.ToRequest(CategoriesOnly)); diff != "" {
		t.Errorf("untyped request mismatch (-want +got):\n%s", diff)
	}

	want.Types = []string{"Game"}
	if diff := cmp.Diff(want, in.ToRequest(WithProjectTypes)); diff != "" {
		t.Errorf("typed request mismatch (-want +got):\n%s", diff)
	}
}
