// Package prompt builds the instruction text sent to the language model for
// each content type. Builders are pure: they never fail and never call out.
package prompt

import (
	"fmt"

	"github.com/phrazzld/nani-api/internal/domain"
)

// Prompt is a user instruction paired with the system instruction for its content type.
type Prompt struct {
	User   string
	System string
}

// jsonOnly closes every user prompt.
const jsonOnly = "請只回覆 JSON，不要有其他文字。"

// Assessment builds a prompt for a ten-question quiz at difficulty d.
// d must already be validated with domain.ParseDifficulty.
func Assessment(text string, d domain.Difficulty) Prompt {
	label := d.Label()
	user := fmt.Sprintf(`你是一位專業的教育評量設計師。請根據以下教科書內容，設計%[1]s程度的評量試題。

## 難度要求
%[2]s

## 教科書內容
%[3]s

## 輸出要求
請設計剛好 10 題，以 JSON 格式輸出，格式如下：
`+"```json"+`
{
  "title": "評量標題",
  "difficulty": "%[1]s",
  "questions": [
    {
      "number": 1,
      "type": "choice",
      "question": "題目內容",
      "options": ["A. 選項一", "B. 選項二", "C. 選項三", "D. 選項四"],
      "answer": "A",
      "explanation": "解析說明"
    }
  ]
}
`+"```"+`

題型分配建議：
- 選擇題 (choice): 6 題
- 是非題 (truefalse): 2 題（用 options: ["O 正確", "X 錯誤"]）
- 簡答題 (short): 2 題（不需 options）

%[4]s`, label, d.Description(), text, jsonOnly)

	return Prompt{User: user, System: assessmentSystem}
}

const assessmentSystem = `你是台灣的專業教育評量設計師，熟悉十二年國教課綱。
你設計的題目要符合台灣教育體系的用語和風格。
請使用繁體中文。所有輸出必須是有效的 JSON 格式。`

// Comic builds a prompt for a 6 to 10 panel educational comic script.
// Scene descriptions are requested in English so they can feed image models.
func Comic(text string) Prompt {
	user := fmt.Sprintf(`你是一位教育漫畫腳本家。請根據以下教科書內容，設計一則 6~10 格的教育漫畫腳本。

## 教科書內容
%s

## 輸出要求
以 JSON 格式輸出漫畫腳本：
`+"```json"+`
{
  "title": "漫畫標題",
  "characters": [
    { "name": "角色名", "description": "簡短外觀描述" }
  ],
  "panels": [
    {
      "number": 1,
      "scene": "場景描述（用於生成圖片的英文 prompt）",
      "dialogue": "對話內容（中文）",
      "narration": "旁白說明（中文，如果有的話）"
    }
  ]
}
`+"```"+`

設計原則：
1. 用生動有趣的故事方式呈現知識概念
2. 角色可以是學生、老師、或擬人化的科學概念
3. 場景描述要用英文，方便圖片 AI 生成
4. 對話要口語化、活潑
5. 每格的場景描述要具體，包含角色動作和表情

%s`, text, jsonOnly)

	return Prompt{User: user, System: comicSystem}
}

const comicSystem = `你是一位擅長將教育內容轉化為有趣漫畫的腳本家。
你熟悉台灣的教育內容和學生的語言習慣。
場景描述（scene）請用英文撰寫，其餘用繁體中文。
所有輸出必須是有效的 JSON 格式。`

// ComicPanelImage wraps a panel's scene description in the fixed illustration style.
func ComicPanelImage(scene string) string {
	return "Educational comic panel, colorful cartoon illustration style, child-friendly, no text in image: " + scene
}

// Worksheet builds a prompt for a competency-oriented worksheet.
func Worksheet(text string) Prompt {
	user := fmt.Sprintf(`你是一位課程設計專家。請根據以下教科書內容，設計一份素養導向的主題學習單。

## 教科書內容
%s

## 輸出要求
以 JSON 格式輸出學習單：
`+"```json"+`
{
  "title": "學習單標題",
  "topic": "主題說明",
  "objectives": ["學習目標1", "學習目標2"],
  "sections": [
    {
      "title": "段落標題",
      "type": "scenario",
      "content": "情境描述或說明",
      "questions": [
        {
          "number": 1,
          "question": "問題內容",
          "hint": "提示或引導（選填）",
          "lines": 3
        }
      ]
    }
  ],
  "reflection": {
    "title": "學習反思",
    "questions": [
      "反思問題1",
      "反思問題2"
    ]
  },
  "extension": {
    "title": "延伸活動",
    "description": "延伸活動說明"
  }
}
`+"```"+`

設計原則：
1. 以真實情境引入，連結生活經驗
2. 包含「情境題」、「探究活動」、「反思問題」三大區塊
3. 題目應能培養學生的批判思考和問題解決能力
4. 適合學生獨立完成或小組討論
5. 包含 4~6 個段落，每段 1~3 題

%s`, text, jsonOnly)

	return Prompt{User: user, System: worksheetSystem}
}

const worksheetSystem = `你是台灣的素養教育課程設計專家，熟悉十二年國教課綱的素養導向教學。
你設計的學習單要能培養學生的核心素養能力。
請使用繁體中文。所有輸出必須是有效的 JSON 格式。`

// Podcast builds a prompt for a five-minute narrated explainer script.
func Podcast(text string) Prompt {
	user := fmt.Sprintf(`你是一位科普 Podcast 節目主持人。請根據以下教科書內容，撰寫一段約 5 分鐘的科普解說講稿。

## 教科書內容
%s

## 輸出要求
以 JSON 格式輸出講稿：
`+"```json"+`
{
  "title": "節目標題",
  "duration_estimate": "約 5 分鐘",
  "segments": [
    { "type": "intro", "text": "開場白內容", "duration": "約 30 秒" },
    { "type": "main", "subtitle": "段落小標", "text": "主要內容", "duration": "約 2 分鐘" },
    { "type": "example", "subtitle": "生活實例", "text": "舉例說明", "duration": "約 1 分鐘" },
    { "type": "summary", "text": "重點摘要", "duration": "約 1 分鐘" },
    { "type": "outro", "text": "結語", "duration": "約 30 秒" }
  ],
  "full_script": "完整的講稿文字（將所有 segments 的 text 串連起來，加入適當的過渡語句）"
}
`+"```"+`

撰寫原則：
1. 語氣親切活潑，像朋友聊天一樣
2. 用生活化的比喻解釋專業概念
3. 加入「你知道嗎？」「想像一下...」等互動語句
4. 內容正確但不要太學術
5. full_script 是完整可以直接朗讀的文字，約 800~1200 字

%s`, text, jsonOnly)

	return Prompt{User: user, System: podcastSystem}
}

const podcastSystem = `你是一位受歡迎的台灣科普 Podcast 主持人。
你擅長用輕鬆有趣的方式解釋複雜的知識。
你的目標聽眾是國中到高中的學生。
請使用繁體中文，語氣要自然口語化。
所有輸出必須是有效的 JSON 格式。`

// APIKeyCheck is the minimal prompt used to verify a key works.
const APIKeyCheck = "回覆「OK」即可。"
