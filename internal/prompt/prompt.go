// Package prompt builds the fixed system+user conversations for each
// enhancement task. Building is pure: no I/O, identical inputs always
// produce identical conversations.
package prompt

import (
	"fmt"

	"github.com/jasonren05/learning-agent/internal/ai"
)

type TaskKind string

const (
	TaskNoteCompletion  TaskKind = "note"
	TaskProblemAnalysis TaskKind = "problem"
	TaskEnglishStudy    TaskKind = "english"
)

// Title returns the heading used in archived Markdown renderings.
func (t TaskKind) Title() string {
	switch t {
	case TaskNoteCompletion:
		return "Note"
	case TaskProblemAnalysis:
		return "Problem"
	case TaskEnglishStudy:
		return "English"
	default:
		return string(t)
	}
}

// Level is the user's English proficiency tier.
type Level string

const (
	LevelPrimary    Level = "primary"
	LevelMiddle     Level = "middle"
	LevelHighSchool Level = "high_school"
	LevelCET4       Level = "cet4"
	LevelCET6       Level = "cet6"
	LevelIELTSTOEFL Level = "ielts_toefl"
)

var levelLabels = map[Level]string{
	LevelPrimary:    "小学",
	LevelMiddle:     "初中",
	LevelHighSchool: "高中",
	LevelCET4:       "大学四级",
	LevelCET6:       "大学六级",
	LevelIELTSTOEFL: "雅思托福",
}

// Label resolves the human-readable level name. Unknown or empty levels
// fall back to the high-school label.
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return levelLabels[LevelHighSchool]
}

// Build returns the conversation for the given task. content is either the
// raw text or, when isImage is true, the embeddable image reference produced
// by extraction. level is only consulted for TaskEnglishStudy.
func Build(task TaskKind, content string, isImage bool, level Level) ai.Conversation {
	switch task {
	case TaskProblemAnalysis:
		return buildProblemAnalysis(content, isImage)
	case TaskEnglishStudy:
		return buildEnglishStudy(content, isImage, level)
	default:
		return buildNoteCompletion(content, isImage)
	}
}

func buildNoteCompletion(content string, isImage bool) ai.Conversation {
	if isImage {
		return ai.Conversation{
			ai.SystemTurn("你是一个专业的学习助手。请分析图片中的内容，提取关键信息，并补全完善相关知识点，使内容更加完整和易于理解。请用Markdown格式输出。"),
			ai.UserImageTurn("请分析这张图片中的内容，提取关键信息并补全相关知识点：", content),
		}
	}
	return ai.Conversation{
		ai.SystemTurn("你是一个专业的学习助手。请帮助用户补全和完善笔记内容，填补知识点间的逻辑关系，使笔记更加完整和易于理解。请用Markdown格式输出，包含适当的标题、列表和重点标记。"),
		ai.UserTurn(fmt.Sprintf("请帮我补全和完善以下笔记内容，填补缺失的知识点和逻辑关系：\n\n%s", content)),
	}
}

func buildProblemAnalysis(content string, isImage bool) ai.Conversation {
	if isImage {
		return ai.Conversation{
			ai.SystemTurn("你是一个专业的教学助手。请分析图片中的题目，提供详细的解析，包括解题思路、步骤和知识点说明。请用Markdown格式输出。"),
			ai.UserImageTurn("请分析这张图片中的题目并提供详细解析：", content),
		}
	}
	return ai.Conversation{
		ai.SystemTurn("你是一个专业的教学助手。请为用户提供详细的题目解析，包括解题思路、步骤和知识点说明。请用Markdown格式输出。"),
		ai.UserTurn(fmt.Sprintf("请为以下题目生成详细的解析：\n\n%s", content)),
	}
}

func buildEnglishStudy(content string, isImage bool, level Level) ai.Conversation {
	label := level.Label()
	if isImage {
		return ai.Conversation{
			ai.SystemTurn(fmt.Sprintf("你是一个专业的英语学习助手。用户的英语水平是%s。请分析图片中的英语内容并生成学习材料，用Markdown格式输出。", label)),
			ai.UserImageTurn(fmt.Sprintf("请分析这张图片中的英语内容，根据我的英语水平(%s)生成学习材料，包括：1.内容导读 2.重点词汇及其释义 3.语法结构分析：", label), content),
		}
	}
	return ai.Conversation{
		ai.SystemTurn(fmt.Sprintf("你是一个专业的英语学习助手。用户的英语水平是%s。请根据用户水平生成学习材料，用Markdown格式输出。", label)),
		ai.UserTurn(fmt.Sprintf("请为以下英语文章生成学习材料，包括：1.文章导读 2.超出用户水平的词汇及其英文释义 3.重点语法结构分析：\n\n%s", content)),
	}
}
