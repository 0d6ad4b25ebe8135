package bot

import (
	"fmt"
	"strings"

	"github.com/tagmix/tagmix/internal/hashtag"
)

// User-facing texts. The input labels stay bilingual (Корни/Roots,
// Суффиксы/Suffixes) but the bot itself speaks Russian.
const (
	welcomeTemplate = "🏷️ *Генератор хэштегов*\n" +
		"\n" +
		"Создаю все комбинации хэштегов из корней и суффиксов для комментариев.\n" +
		"\n" +
		"*Отправьте сообщение в формате:*\n" +
		"```\n" +
		"Корни: слово1, слово2, слово3\n" +
		"Суффиксы: окончание1, окончание2\n" +
		"```\n" +
		"\n" +
		"*Пример:*\n" +
		"```\n" +
		"Корни: отопление, котел, котельная\n" +
		"Суффиксы: москва, спб, купить, монтаж\n" +
		"```\n" +
		"\n" +
		"*Результат:* `#отоплениемосква` `#отоплениеспб` `#котелкупить` и т.д.\n" +
		"\n" +
		"✅ Блоки по %d штук (лимит на комментарий)\n" +
		"✅ Без повторов\n" +
		"✅ Готово для копипаста"

	helpTemplate = "📖 *Справка*\n" +
		"\n" +
		"*Команды:*\n" +
		"/start - Начать работу с ботом\n" +
		"/help - Показать эту справку\n" +
		"\n" +
		"*Формат ввода:*\n" +
		"```\n" +
		"Корни: корень1, корень2, корень3\n" +
		"Суффиксы: суффикс1, суффикс2\n" +
		"```\n" +
		"\n" +
		"*Особенности:*\n" +
		"• Хэштеги создаются в формате #корень+суффикс\n" +
		"• Дубликаты автоматически удаляются\n" +
		"• Результат разбивается на блоки по %d хэштегов\n" +
		"• Можно скачать все хэштеги в TXT файле\n" +
		"\n" +
		"*Поддерживаемые языки ввода:*\n" +
		"• Корни / Roots\n" +
		"• Суффиксы / Suffixes"

	msgMissingRoots = "❌ Не найдены корни. Пожалуйста, укажите их в формате:\n" +
		"`Корни: слово1, слово2, слово3`"

	msgMissingSuffixes = "❌ Не найдены суффиксы. Пожалуйста, укажите их в формате:\n" +
		"`Суффиксы: окончание1, окончание2`"

	msgEmptyResult = "❌ Не удалось создать хэштеги. Проверьте ввод."

	msgDocumentCaption = "📄 Все хэштеги в TXT файле для скачивания"
)

func welcomeMessage(blockSize int) string {
	return fmt.Sprintf(welcomeTemplate, blockSize)
}

func helpMessage(blockSize int) string {
	return fmt.Sprintf(helpTemplate, blockSize)
}

func summaryMessage(res *hashtag.Result, blockSize int) string {
	return fmt.Sprintf(
		"✅ *Создано %d хэштегов*\n📦 Разбито на %d блоков по %d шт.\n\nКорни: `%s`\nСуффиксы: `%s`",
		len(res.Hashtags), len(res.Blocks), blockSize,
		strings.Join(res.Roots, ", "), strings.Join(res.Suffixes, ", "),
	)
}

func blockMessage(index, total int, block []string) string {
	return fmt.Sprintf("*Блок %d/%d* (%d хэштегов):\n\n`%s`",
		index, total, len(block), hashtag.FormatBlock(block))
}
