package knowledge

import (
	"fmt"
	"os"

	"resume-architect/internal/model"

	"gopkg.in/yaml.v3"
)

// Article is one tip shown in the career knowledge drawer. Content keeps its
// newlines; clients render it pre-line.
type Article struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

type Category struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Articles []Article `json:"articles" yaml:"articles"`
}

// Base serves the built-in bilingual career tips, optionally replaced by a
// YAML file for deployments that curate their own content.
type Base struct {
	data map[model.Language][]Category
}

// New returns the base with built-in content. When path is non-empty, the
// YAML file at path replaces the built-ins wholesale.
func New(path string) (*Base, error) {
	b := &Base{data: builtin()}
	if path == "" {
		return b, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var override map[string][]Category
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	data := map[model.Language][]Category{}
	for k, v := range override {
		data[model.ParseLanguage(k)] = v
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("knowledge file %s has no categories", path)
	}
	b.data = data
	return b, nil
}

// Categories returns the tips for a language, falling back to English.
func (b *Base) Categories(lang model.Language) []Category {
	if cats, ok := b.data[lang]; ok && len(cats) > 0 {
		return cats
	}
	return b.data[model.LangEN]
}

func builtin() map[model.Language][]Category {
	return map[model.Language][]Category{
		model.LangEN: {
			{
				ID:   "resume",
				Name: "Resume Tips",
				Articles: []Article{
					{
						Title:   "The STAR Method",
						Content: "Use the STAR method to describe your experiences:\n\n• Situation: Set the scene.\n• Task: Describe your responsibility.\n• Action: Explain what steps you took.\n• Result: Share outcomes (use numbers!).",
					},
					{
						Title:   "Action Verbs",
						Content: "Start bullet points with strong action verbs like \"Led\", \"Developed\", \"Increased\", \"Optimized\" rather than passive phrases like \"Responsible for\".",
					},
					{
						Title:   "ATS Optimization",
						Content: "Keep formatting simple. Use standard headings. Include keywords from the job description to pass Applicant Tracking Systems.",
					},
				},
			},
			{
				ID:   "interview",
				Name: "Interview Prep",
				Articles: []Article{
					{
						Title:   "Tell Me About Yourself",
						Content: "Keep it professional. Briefly cover your past, focus on your current achievements, and explain why you are interested in this specific role and future goals.",
					},
					{
						Title:   "Greatest Weakness",
						Content: "Choose a real weakness but show how you are working to improve it. Example: \"I sometimes struggle with public speaking, so I joined a Toastmasters club to practice.\"",
					},
				},
			},
		},
		model.LangZH: {
			{
				ID:   "resume",
				Name: "简历撰写技巧",
				Articles: []Article{
					{
						Title:   "STAR 法则",
						Content: "使用 STAR 法则描述你的经历，让成就更具说服力：\n\n• 情境 (Situation): 任务背景是什么？\n• 任务 (Task): 你面临的挑战或目标？\n• 行动 (Action): 你具体做了什么？\n• 结果 (Result): 取得了什么可量化的成果？",
					},
					{
						Title:   "拒绝“流水账”",
						Content: "不要只列出工作职责（Responsible for...）。要强调你的贡献。例如，将“负责销售”改为“通过新客户开发策略，使季度销售额增长了 20%”。",
					},
					{
						Title:   "排版与关键词",
						Content: "HR 浏览简历通常只需 6-10 秒。确保重点突出，使用加粗字体强调技能和数据。根据职位描述（JD）调整简历中的关键词。",
					},
				},
			},
			{
				ID:   "interview",
				Name: "面试通关秘籍",
				Articles: []Article{
					{
						Title:   "自我介绍范式",
						Content: "公式：我是谁 + 我的核心亮点/成就 + 我为什么匹配这个岗位。\n控制在 2-3 分钟内，不要背诵简历，要讲故事。",
					},
					{
						Title:   "如何回答“你的缺点”",
						Content: "不要说“过于追求完美”这种假缺点。说一个真实的、非核心能力的缺点，并重点描述你正在如何改进它。例如：“我在公开演讲方面比较紧张，所以我正在主动参与团队分享会来锻炼自己。”",
					},
					{
						Title:   "反向提问环节",
						Content: "面试结束时不要说“没问题了”。可以问：“团队目前的重点目标是什么？”、“您对这个职位的理想人选有什么期待？”，这能体现你的积极性。",
					},
				},
			},
			{
				ID:   "career",
				Name: "职场生存法则",
				Articles: []Article{
					{
						Title:   "向上管理",
						Content: "定期主动汇报进度，不要等老板问。遇到问题带上方案去请示，而不仅仅是带去问题。了解老板的优先事项。",
					},
					{
						Title:   "高效沟通",
						Content: "结论先行。在邮件或汇报中，先说结果或核心观点，再展开论述细节（金字塔原理）。",
					},
				},
			},
		},
	}
}
