package model

import "time"

// Post 是一次帖子生成的结果文档，创建后不可变。
// RawRequest 保存发往 webhook 的完整请求，仅入库，不回传给客户端。
type Post struct {
	ID             string                 `json:"id" bson:"_id"`
	UserID         string                 `json:"user_id" bson:"user_id"`
	CreatedAt      time.Time              `json:"created_at" bson:"created_at"`
	Platform       string                 `json:"platform" bson:"platform"`
	ContentType    string                 `json:"content_type" bson:"content_type"`
	Tone           string                 `json:"tone" bson:"tone"`
	PersonaID      string                 `json:"persona_id,omitempty" bson:"persona_id,omitempty"`
	Suggestions    []string               `json:"suggestions" bson:"suggestions"`
	RequestDetails map[string]interface{} `json:"request_details,omitempty" bson:"request_details,omitempty"`
	RawRequest     interface{}            `json:"-" bson:"raw_request,omitempty"`
}
