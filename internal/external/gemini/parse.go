package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON извлекает JSON-объект из ответа модели и декодирует его в v.
// Модель иногда оборачивает JSON в markdown-блоки или добавляет текст вокруг.
func DecodeJSON(response string, v interface{}) error {
	cleaned := stripMarkdownFences(response)
	cleaned = extractObject(cleaned)

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("failed to unmarshal model response: %w", err)
	}

	return nil
}

// stripMarkdownFences убирает markdown блоки ```json
func stripMarkdownFences(response string) string {
	start := strings.Index(response, "```json")
	if start == -1 {
		return response
	}

	start += len("```json")
	end := strings.LastIndex(response, "```")
	if end > start {
		return response[start:end]
	}

	return response
}

// extractObject ищет последний валидный JSON-объект в тексте
func extractObject(response string) string {
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 {
		return response
	}

	braceCount := 0
	startBrace := -1
	for i := lastBrace; i >= 0; i-- {
		switch response[i] {
		case '}':
			braceCount++
		case '{':
			braceCount--
			if braceCount == 0 {
				startBrace = i
			}
		}
		if startBrace != -1 {
			break
		}
	}

	if startBrace != -1 {
		return response[startBrace : lastBrace+1]
	}

	return response
}
