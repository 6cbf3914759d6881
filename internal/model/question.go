package model

// Question 是问卷目录中的一条固定问题。
type Question struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// 画像流水线按 question_id 定位特定答案时使用的保留键。
const (
	QuestionBlogURL     = "blog_url"
	QuestionUserEmail   = "user_email"
	QuestionCurrentRole = "current_role"
	QuestionJobTitle    = "job_title"
	QuestionCompanyName = "company_name"
)

// PersonaCreationQuestions 是静态问卷目录，顺序即展示顺序。
var PersonaCreationQuestions = []Question{
	{
		ID:          QuestionUserEmail,
		Type:        "text",
		Question:    "What is your email?",
		Placeholder: "Enter your email",
		Required:    true,
		Description: "User email",
	},
	{
		ID:          QuestionCurrentRole,
		Type:        "text",
		Question:    "What is your current role?",
		Placeholder: "Enter your current role",
		Required:    true,
		Description: "Current role",
	},
	{
		ID:          QuestionCompanyName,
		Type:        "text",
		Question:    "What is the name of your company?",
		Placeholder: "Enter your company name",
		Required:    true,
		Description: "Company name",
	},
	{
		ID:          "years_of_experience",
		Type:        "number",
		Question:    "How many years of experience do you have?",
		Placeholder: "Enter your years of experience",
		Required:    true,
		Description: "Years of experience",
	},
	{
		ID:          "platform_authenticity",
		Type:        "text",
		Question:    "Which platform do you feel most yourself on and why?",
		Placeholder: "Mention your preferred platform and why",
		Required:    true,
		Description: "Trait: Authenticity",
	},
	{
		ID:          "content_intent",
		Type:        "text",
		Question:    "Do you consciously aim to influence others or inspire them with your posts, or is your content more personal in nature?",
		Placeholder: "Explain your intent behind content",
		Required:    true,
		Description: "Trait: Intentionality",
	},
	{
		ID:          QuestionBlogURL,
		Type:        "text",
		Question:    "What is the URL of your blog?",
		Placeholder: "Enter your blog URL",
		Required:    true,
		Description: "Blog URL",
	},
	{
		ID:          "social_media_platforms",
		Type:        "text",
		Question:    "What social media platforms do you use?",
		Placeholder: "Enter your social media platforms",
		Required:    true,
		Description: "Social media platforms",
	},
}
