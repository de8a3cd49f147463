package kana

import "vmxio.com/kana-quiz/internal/quiz"

// hiragana maps every kana (basic, dakuten/handakuten and yoon) to its
// Bangla transliteration. Symbols are unique; some readings repeat.
var hiragana = []quiz.Pair{
	{Symbol: "あ", Translation: "আ"}, {Symbol: "い", Translation: "ই"}, {Symbol: "う", Translation: "উ"}, {Symbol: "え", Translation: "এ"}, {Symbol: "お", Translation: "ও"},
	{Symbol: "か", Translation: "কা"}, {Symbol: "き", Translation: "কি"}, {Symbol: "く", Translation: "কু"}, {Symbol: "け", Translation: "কে"}, {Symbol: "こ", Translation: "কো"},
	{Symbol: "さ", Translation: "সা"}, {Symbol: "し", Translation: "শি"}, {Symbol: "す", Translation: "সু"}, {Symbol: "せ", Translation: "সে"}, {Symbol: "そ", Translation: "সো"},
	{Symbol: "た", Translation: "তা"}, {Symbol: "ち", Translation: "চি"}, {Symbol: "つ", Translation: "ত্সু"}, {Symbol: "て", Translation: "তে"}, {Symbol: "と", Translation: "তো"},
	{Symbol: "な", Translation: "না"}, {Symbol: "に", Translation: "নি"}, {Symbol: "ぬ", Translation: "নু"}, {Symbol: "ね", Translation: "নে"}, {Symbol: "の", Translation: "নো"},
	{Symbol: "は", Translation: "হা"}, {Symbol: "ひ", Translation: "হি"}, {Symbol: "ふ", Translation: "ফু"}, {Symbol: "へ", Translation: "হে"}, {Symbol: "ほ", Translation: "হো"},
	{Symbol: "ま", Translation: "মা"}, {Symbol: "み", Translation: "মি"}, {Symbol: "む", Translation: "মু"}, {Symbol: "め", Translation: "মে"}, {Symbol: "も", Translation: "মো"},
	{Symbol: "や", Translation: "ইয়া"}, {Symbol: "ゆ", Translation: "ইউ"}, {Symbol: "よ", Translation: "ইয়ো"},
	{Symbol: "ら", Translation: "রা"}, {Symbol: "り", Translation: "রি"}, {Symbol: "る", Translation: "রু"}, {Symbol: "れ", Translation: "রে"}, {Symbol: "ろ", Translation: "রো"},
	{Symbol: "わ", Translation: "ওয়া"}, {Symbol: "を", Translation: "ও"}, {Symbol: "ん", Translation: "ন"},

	// dakuten / handakuten
	{Symbol: "が", Translation: "গা"}, {Symbol: "ぎ", Translation: "গি"}, {Symbol: "ぐ", Translation: "গু"}, {Symbol: "げ", Translation: "গে"}, {Symbol: "ご", Translation: "গো"},
	{Symbol: "ざ", Translation: "জা"}, {Symbol: "じ", Translation: "জি"}, {Symbol: "ず", Translation: "জু"}, {Symbol: "ぜ", Translation: "জে"}, {Symbol: "ぞ", Translation: "জো"},
	{Symbol: "だ", Translation: "দা"}, {Symbol: "ぢ", Translation: "জি"}, {Symbol: "づ", Translation: "দ্জু"}, {Symbol: "で", Translation: "দে"}, {Symbol: "ど", Translation: "দো"},
	{Symbol: "ば", Translation: "বা"}, {Symbol: "び", Translation: "বি"}, {Symbol: "ぶ", Translation: "বু"}, {Symbol: "べ", Translation: "বে"}, {Symbol: "ぼ", Translation: "বো"},
	{Symbol: "ぱ", Translation: "পা"}, {Symbol: "ぴ", Translation: "পি"}, {Symbol: "ぷ", Translation: "পু"}, {Symbol: "ぺ", Translation: "পে"}, {Symbol: "ぽ", Translation: "পো"},

	// yoon
	{Symbol: "きゃ", Translation: "ক্যা"}, {Symbol: "きゅ", Translation: "ক্যু"}, {Symbol: "きょ", Translation: "ক্যো"},
	{Symbol: "しゃ", Translation: "শ্যা"}, {Symbol: "しゅ", Translation: "শ্যু"}, {Symbol: "しょ", Translation: "শ্যো"},
	{Symbol: "ちゃ", Translation: "চ্যা"}, {Symbol: "ちゅ", Translation: "চ্যু"}, {Symbol: "ちょ", Translation: "চ্যো"},
	{Symbol: "にゃ", Translation: "ন্যা"}, {Symbol: "にゅ", Translation: "ন্যু"}, {Symbol: "にょ", Translation: "ন্যো"},
	{Symbol: "ひゃ", Translation: "হ্যা"}, {Symbol: "ひゅ", Translation: "হ্যু"}, {Symbol: "ひょ", Translation: "হ্যো"},
	{Symbol: "みゃ", Translation: "ম্যা"}, {Symbol: "みゅ", Translation: "ম্যু"}, {Symbol: "みょ", Translation: "ম্যো"},
	{Symbol: "りゃ", Translation: "র্যা"}, {Symbol: "りゅ", Translation: "র্যু"}, {Symbol: "りょ", Translation: "র্যো"},
	{Symbol: "ぎゃ", Translation: "গ্যা"}, {Symbol: "ぎゅ", Translation: "গ্যু"}, {Symbol: "ぎょ", Translation: "গ্যো"},
	{Symbol: "じゃ", Translation: "জ্যা"}, {Symbol: "じゅ", Translation: "জ্যু"}, {Symbol: "じょ", Translation: "জ্যো"},
	{Symbol: "びゃ", Translation: "ব্যা"}, {Symbol: "びゅ", Translation: "ব্যু"}, {Symbol: "びょ", Translation: "ব্যো"},
	{Symbol: "ぴゃ", Translation: "প্যা"}, {Symbol: "ぴゅ", Translation: "প্যু"}, {Symbol: "ぴょ", Translation: "প্যো"},
}
