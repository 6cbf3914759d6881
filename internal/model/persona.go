// Package model 定义了服务的核心数据结构。
package model

import "time"

// QuestionAnswer 是客户端提交的一条问卷答案。
type QuestionAnswer struct {
	QuestionID string `json:"question_id" bson:"question_id" binding:"required"`
	Question   string `json:"question" bson:"question"`
	Answer     string `json:"answer" bson:"answer" binding:"required"`
}

// StyleProfile 是抓取服务从博客中提取出的写作风格记录。
// 字段形状由发送给抓取服务的 schema 固定。
type StyleProfile struct {
	WritingStyle     string   `json:"writing_style"`
	ToneOfVoice      string   `json:"tone_of_voice"`
	Values           []string `json:"values"`
	PreferredFormats []string `json:"preferred_formats"`
}

// IsZero 判断风格记录是否为空（未抓取或抓取失败）。
func (p StyleProfile) IsZero() bool {
	return p.WritingStyle == "" && p.ToneOfVoice == "" &&
		len(p.Values) == 0 && len(p.PreferredFormats) == 0
}

// Persona 是合成后的用户画像文档，创建后不可变。
// CreatedAt 由服务端在写入时赋值，JSON 序列化为 RFC 3339 字符串。
type Persona struct {
	ID               string           `json:"id" bson:"_id"`
	UserID           string           `json:"user_id" bson:"user_id"`
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`
	Goals            []string         `json:"goals" bson:"goals"`
	ToneOfVoice      []string         `json:"tone_of_voice" bson:"tone_of_voice"`
	KeyTopics        []string         `json:"key_topics" bson:"key_topics"`
	Values           []string         `json:"values" bson:"values"`
	PreferredFormats []string         `json:"preferred_formats" bson:"preferred_formats"`
	TargetAudience   string           `json:"target_audience" bson:"target_audience"`
	PersonaSummary   string           `json:"persona_summary" bson:"persona_summary"`
	RawQuestionaries []QuestionAnswer `json:"raw_questionaries" bson:"raw_questionaries"`
}

// AnswerByID 按 question_id 在原始问卷里查找答案，未找到返回空串。
func (p Persona) AnswerByID(ids ...string) string {
	for _, qa := range p.RawQuestionaries {
		for _, id := range ids {
			if qa.QuestionID == id {
				return qa.Answer
			}
		}
	}
	return ""
}
