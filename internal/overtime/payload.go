package overtime

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// DecodePayload は傍受したレスポンスボディをそのまま受け取り、
// gzip 解凍と文字コード変換を経て JSON オブジェクトへ復元する。
// contentEncoding は Content-Encoding ヘッダ、charset は Content-Type の charset パラメータ
func DecodePayload(body io.Reader, contentEncoding, charset string) (map[string]any, error) {
	r := body
	if strings.Contains(strings.ToLower(contentEncoding), "gzip") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, ErrInvalid(fmt.Sprintf("cannot decompress gzip body: %v", err))
		}
		defer gz.Close()
		r = gz
	}

	// 上流は EUC-KR で返すことがある
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
	case "euc-kr", "euckr", "cp949":
		r = transform.NewReader(r, korean.EUCKR.NewDecoder())
	default:
		return nil, ErrInvalid(fmt.Sprintf("unsupported charset %q", charset))
	}

	var payload map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, ErrInvalid(fmt.Sprintf("cannot parse payload JSON: %v", err))
	}
	return payload, nil
}
