package lsp

import "sort"

// EncodeSemanticTokens produces the relative, five-integer-per-token
// encoding of the semantic tokens protocol.
func EncodeSemanticTokens(toks []SemTok) []uint32 {
	sorted := make([]SemTok, len(toks))
	copy(sorted, toks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Col < sorted[j].Col
	})

	data := make([]uint32, 0, len(sorted)*5)
	prevLine, prevCol := 0, 0
	for _, t := range sorted {
		deltaLine := t.Line - prevLine
		deltaCol := t.Col
		if deltaLine == 0 {
			deltaCol = t.Col - prevCol
		}
		data = append(data,
			uint32(deltaLine),
			uint32(deltaCol),
			uint32(t.Length),
			uint32(t.Type),
			uint32(t.Mods),
		)
		prevLine, prevCol = t.Line, t.Col
	}
	return data
}
