package engine

// DefaultKeyword は宣言を導入するトークン列の既定値です。
const DefaultKeyword = "data class"

// Options は実行オプション
type Options struct {
	File     string   // 走査対象ファイル
	Names    []string // 重複を確認する宣言名（指定順）
	Keyword  string   // 宣言キーワード（既定: "data class"）
	Encoding string   // 文字コード（既定: utf-8）
}
