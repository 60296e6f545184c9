package i18n

import govsn "github.com/reoring/govsn"

var catalog = map[string]map[string]string{
	"en": {
		govsn.CodeRequiredFieldMissing:      "{field} is required",
		govsn.CodeInvalidNumberFormat:       "{field} must be a decimal number, got {got}",
		govsn.CodeValueOutOfRange:           "{field} must be in range {range}, got {got}",
		govsn.CodeInvalidColorFormat:        "{field} must be a packed ARGB integer in [0, 4294967295], got {got}",
		govsn.CodeInvalidDataType:           "{field} must be one of {allowed}, got {got}",
		govsn.CodeInvalidLoopTypeDuration:   "appointDuration must be at least {min} ms when loopType is 0",
		govsn.CodeMissingLogFontHeight:      "text items need logFont.lfHeight of at least 1",
		govsn.CodeInvalidSyncRegionItemType: "region sync_program only accepts image, video and GIF items, got type {type}",
		govsn.CodeInvalidRectDimensions:     "{field} must be at least 1 pixel, got {got}",
		govsn.CodeUnknownItemType:           "item type {type} is not known to this version",
		govsn.CodeNonHTTPURL:                "url {got} does not start with http; some players cannot open it",
		govsn.CodeSuspiciousFilePath:        "file path {got} uses backslashes or parent segments",
		govsn.CodeRegionOutOfBounds:         "region extends beyond the {width}x{height} canvas",
		govsn.CodeDuplicateKey:              "key {key} appears more than once; the last value wins",
		govsn.CodeConversionError:           "conversion failed: {cause}",
	},
	"ja": {
		govsn.CodeRequiredFieldMissing:      "{field} は必須です",
		govsn.CodeInvalidNumberFormat:       "{field} は10進数である必要があります（値: {got}）",
		govsn.CodeValueOutOfRange:           "{field} は範囲 {range} 内である必要があります（値: {got}）",
		govsn.CodeInvalidColorFormat:        "{field} は 0〜4294967295 の ARGB 整数である必要があります（値: {got}）",
		govsn.CodeInvalidDataType:           "{field} は {allowed} のいずれかである必要があります（値: {got}）",
		govsn.CodeInvalidLoopTypeDuration:   "loopType が 0 の場合、appointDuration は {min} ms 以上が必要です",
		govsn.CodeMissingLogFontHeight:      "テキスト項目には 1 以上の logFont.lfHeight が必要です",
		govsn.CodeInvalidSyncRegionItemType: "sync_program 領域には画像・動画・GIF のみ配置できます（種別: {type}）",
		govsn.CodeInvalidRectDimensions:     "{field} は 1 ピクセル以上が必要です（値: {got}）",
		govsn.CodeUnknownItemType:           "項目種別 {type} はこのバージョンでは未対応です",
		govsn.CodeNonHTTPURL:                "URL {got} が http で始まっていません。再生できない機種があります",
		govsn.CodeSuspiciousFilePath:        "ファイルパス {got} にバックスラッシュまたは親ディレクトリ参照が含まれています",
		govsn.CodeRegionOutOfBounds:         "領域が {width}x{height} のキャンバスをはみ出しています",
		govsn.CodeDuplicateKey:              "キー {key} が重複しています。最後の値が使われます",
		govsn.CodeConversionError:           "変換に失敗しました: {cause}",
	},
	"zh": {
		govsn.CodeRequiredFieldMissing:      "{field} 为必填项",
		govsn.CodeInvalidNumberFormat:       "{field} 必须是十进制数字，实际为 {got}",
		govsn.CodeValueOutOfRange:           "{field} 必须在 {range} 范围内，实际为 {got}",
		govsn.CodeInvalidColorFormat:        "{field} 必须是 0 到 4294967295 之间的 ARGB 整数，实际为 {got}",
		govsn.CodeInvalidDataType:           "{field} 必须是 {allowed} 之一，实际为 {got}",
		govsn.CodeInvalidLoopTypeDuration:   "loopType 为 0 时 appointDuration 至少为 {min} 毫秒",
		govsn.CodeMissingLogFontHeight:      "文本素材需要 logFont.lfHeight 至少为 1",
		govsn.CodeInvalidSyncRegionItemType: "sync_program 区域只能放置图片、视频和 GIF，实际类型为 {type}",
		govsn.CodeInvalidRectDimensions:     "{field} 至少为 1 像素，实际为 {got}",
		govsn.CodeUnknownItemType:           "当前版本不识别素材类型 {type}",
		govsn.CodeNonHTTPURL:                "网址 {got} 不是以 http 开头，部分播放器无法打开",
		govsn.CodeSuspiciousFilePath:        "文件路径 {got} 含有反斜杠或上级目录",
		govsn.CodeRegionOutOfBounds:         "区域超出了 {width}x{height} 的画布",
		govsn.CodeDuplicateKey:              "键 {key} 重复出现，以最后一个值为准",
		govsn.CodeConversionError:           "转换失败：{cause}",
	},
}
