// Package fuzztests houses Go fuzz harnesses for the TJS2 reader and writer
// (source -> lexer -> parser -> render). Its goal is to smoke test
// robustness and guard against panics, hangs and unstable output on
// arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер и парсер, а
// успешно разобранные значения через канонический вывод и обратно.
//
// Не делает: генерацию корпусов, запись файлов.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/render, internal/diag, value.

package fuzztests
