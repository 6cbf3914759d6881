package webhook

import "strings"

// StripCodeFence 去掉 webhook 响应文本外层的 Markdown 代码围栏。
// 上游自动化场景偶尔会把 JSON 包在 ```json ... ``` 里返回，
// 无围栏、只有前导围栏、前后都有围栏三种情况都必须容忍。
// 该函数是幂等的：对已经干净的文本再调用不改变结果。
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}

	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, "```")
	}

	return strings.TrimSpace(s)
}
