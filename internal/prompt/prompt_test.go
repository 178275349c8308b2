package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonren05/learning-agent/internal/ai"
)

func TestBuildTextConversationShape(t *testing.T) {
	conversation := Build(TaskNoteCompletion, "光合作用的基本过程", false, "")

	require.Len(t, conversation, 2)
	assert.Equal(t, ai.RoleSystem, conversation[0].Role)
	assert.Equal(t, ai.RoleUser, conversation[1].Role)
	assert.Nil(t, conversation[0].Image)
	assert.Nil(t, conversation[1].Image)
	assert.Contains(t, conversation[1].Text, "光合作用的基本过程")
}

func TestBuildImageConversationShape(t *testing.T) {
	dataURL := "data:image/png;base64,aGVsbG8="
	conversation := Build(TaskProblemAnalysis, dataURL, true, "")

	require.Len(t, conversation, 2)
	assert.Nil(t, conversation[0].Image)
	require.NotNil(t, conversation[1].Image)
	assert.Equal(t, dataURL, conversation[1].Image.URL)
	assert.NotEmpty(t, conversation[1].Text, "image turns carry an instruction segment")
}

func TestBuildIsDeterministic(t *testing.T) {
	first := Build(TaskEnglishStudy, "The quick brown fox.", false, LevelCET4)
	second := Build(TaskEnglishStudy, "The quick brown fox.", false, LevelCET4)

	assert.Equal(t, first, second)
}

func TestLevelLabels(t *testing.T) {
	cases := map[Level]string{
		LevelPrimary:    "小学",
		LevelMiddle:     "初中",
		LevelHighSchool: "高中",
		LevelCET4:       "大学四级",
		LevelCET6:       "大学六级",
		LevelIELTSTOEFL: "雅思托福",
	}
	for level, label := range cases {
		assert.Equal(t, label, level.Label())
	}
}

func TestUnknownLevelDefaultsToHighSchool(t *testing.T) {
	assert.Equal(t, "高中", Level("phd").Label())
	assert.Equal(t, "高中", Level("").Label())
}

func TestEnglishStudyInterpolatesLevelLabel(t *testing.T) {
	conversation := Build(TaskEnglishStudy, "Some article.", false, LevelCET6)

	require.Len(t, conversation, 2)
	assert.Contains(t, conversation[0].Text, "大学六级")
	assert.Contains(t, conversation[1].Text, "Some article.")
}

func TestEnglishStudyUnknownLevelMatchesHighSchool(t *testing.T) {
	unknown := Build(TaskEnglishStudy, "text", false, Level("does-not-exist"))
	highSchool := Build(TaskEnglishStudy, "text", false, LevelHighSchool)

	assert.Equal(t, highSchool[0].Text, unknown[0].Text)
}

func TestTaskTitles(t *testing.T) {
	assert.Equal(t, "Note", TaskNoteCompletion.Title())
	assert.Equal(t, "Problem", TaskProblemAnalysis.Title())
	assert.Equal(t, "English", TaskEnglishStudy.Title())
}
