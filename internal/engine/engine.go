package engine

import (
	"errors"
	"regexp"
	"strings"

	"github.com/phyten/dupdecl/internal/model"
	"github.com/phyten/dupdecl/internal/source"
)

// Run はファイルを読み込み、対象名ごとの宣言出現箇所をまとめた Report を返します。
//
// 読み込みに失敗した場合はレポートを一切作らずにエラーを返します
// （source.ErrNotFound / source.ErrDecode で判別できます）。
func Run(opts Options) (*model.Report, error) {
	if strings.TrimSpace(opts.File) == "" {
		return nil, errors.New("no file to scan")
	}
	if len(opts.Names) == 0 {
		return nil, errors.New("no target names configured")
	}
	keyword := opts.Keyword
	if keyword == "" {
		keyword = DefaultKeyword
	}
	enc, err := source.CanonicalEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	text, err := source.Load(opts.File, enc)
	if err != nil {
		return nil, err
	}

	rep := BuildReport(text, keyword, opts.Names)
	rep.File = opts.File
	rep.Encoding = enc
	return rep, nil
}

// BuildReport は names の順に FindMatches を実行し、行番号を付与した Report を組み立てます。
func BuildReport(text, keyword string, names []string) *model.Report {
	idx := NewLineIndex(text)
	rep := &model.Report{
		Keyword: keyword,
		Entries: make([]model.Entry, 0, len(names)),
	}
	for _, name := range names {
		entry := model.Entry{Name: name, Matches: findMatches(text, keyword, name, idx)}
		rep.Entries = append(rep.Entries, entry)
	}
	return rep
}

// FindMatches は text を先頭から走査し、keyword name ( の宣言を出現順に返します。
// 重なり合う一致は返しません。一致がなければ nil です。
func FindMatches(text, keyword, name string) []model.Match {
	return findMatches(text, keyword, name, NewLineIndex(text))
}

func findMatches(text, keyword, name string, idx *LineIndex) []model.Match {
	re := CompilePattern(keyword, name)
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]model.Match, 0, len(locs))
	for _, loc := range locs {
		line, col := idx.LineCol(loc[0])
		out = append(out, model.Match{
			Name:   name,
			Offset: loc[0],
			Line:   line,
			Column: col,
			Text:   text[loc[0]:loc[1]],
		})
	}
	return out
}

// parenSpace is the whitespace allowed between the name and "(": ASCII
// \t-\r, the information separators 0x1c-0x1f, space, NEL and every Unicode
// separator (Zs, Zl, Zp). RE2's \s alone stops at ASCII.
const parenSpace = `[\t-\r\x1c-\x20\x85\p{Z}]*`

// CompilePattern builds the declaration pattern for name. keyword and name are
// matched literally; only whitespace between the name and "(" is flexible.
func CompilePattern(keyword, name string) *regexp.Regexp {
	if keyword == "" {
		keyword = DefaultKeyword
	}
	return regexp.MustCompile(regexp.QuoteMeta(keyword) + " " + regexp.QuoteMeta(name) + parenSpace + `\(`)
}
