package ai

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"resume-architect/internal/model"
)

const extractionPromptEN = "Extract the resume information from the attached document into the specified JSON structure. " +
	"Notes: 1. Extract 'degree' and 'major' separately for education. " +
	"2. Standardize all dates to 'YYYY-MM' format where possible, use 'Present' for current roles. " +
	"3. Extract start and end dates for education. " +
	"4. Extract age and gender if available. " +
	"If a field is missing, leave it as an empty string. " +
	"Summarize experience and project descriptions into concise bullet points."

const extractionPromptZH = "请从附件中提取简历信息，并按照指定的 JSON 结构输出。请注意：" +
	"1. 将教育经历中的'学历'和'专业'分开提取。" +
	"2. 所有时间字段请尽量标准化为 'YYYY-MM' 格式（如 2023-01），如果是'至今'请填 'Present'。" +
	"3. 尽量提取教育经历的开始和结束时间。" +
	"4. 如果简历中有年龄和性别信息，请提取。" +
	"如果某个字段缺失，请保留为空字符串。请将工作经历和项目经历的描述总结为简洁的要点。"

func extractionPrompt(lang model.Language) string {
	if lang == model.LangZH {
		return extractionPromptZH
	}
	return extractionPromptEN
}

// targetLanguageName renders the human-readable name the translation prompt
// refers to ("English", "Simplified Chinese").
func targetLanguageName(lang model.Language) string {
	tag := language.English
	if lang == model.LangZH {
		tag = language.SimplifiedChinese
	}
	return display.English.Tags().Name(tag)
}

func translationPrompt(target model.Language, payloadJSON string) string {
	return fmt.Sprintf(`Translate the following resume JSON data into %s.
Rules:
1. Maintain the exact JSON structure.
2. Translate 'summary', 'description', 'title', 'role', 'degree', 'major', 'school', 'location', 'gender' and skill names.
3. Do NOT translate proper nouns (like names of people or specific tech stack names like React, Python) if they are usually kept in original language, but translate company names if appropriate or provide transliteration.
4. Convert 'Present' to '至今' if translating to Chinese, and '至今' to 'Present' if translating to English.
5. Return the result in the specified JSON schema.

JSON Data to translate:
%s`, targetLanguageName(target), payloadJSON)
}
