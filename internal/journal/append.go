package journal

import "strings"

// FormatItem renders an item as a list line the parser reads back:
// "- text", with the comment as a trailing bracketed span.
func FormatItem(item Item) string {
	line := "- " + item.Text
	if item.Comment != "" {
		line += " [" + item.Comment + "]"
	}
	return line
}

// AppendItem inserts an item at the end of a category's section and
// returns the updated document text. When the category heading is
// missing it is recreated at the end of the document.
func AppendItem(text string, cat Category, item Item) string {
	lines := strings.Split(text, "\n")

	h := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), strings.ToLower(cat.Label)) {
			h = i
			break
		}
	}

	if h == -1 {
		section := "## " + cat.Heading + "\n\n" + FormatItem(item) + "\n"
		body := strings.TrimRight(text, "\n")
		if body == "" {
			return section
		}
		return body + "\n\n" + section
	}

	end := len(lines)
	for i := h + 1; i < end; i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "##") {
			end = i
			break
		}
	}

	body := lines[h+1 : end]
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}

	section := make([]string, 0, len(body)+3)
	if len(body) == 0 {
		section = append(section, "", FormatItem(item), "")
	} else {
		section = append(section, body...)
		section = append(section, FormatItem(item), "")
	}

	out := make([]string, 0, len(lines)+3)
	out = append(out, lines[:h+1]...)
	out = append(out, section...)
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n")
}
