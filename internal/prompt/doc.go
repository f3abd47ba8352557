// Package prompt implements the blocking interactive questions gitcz
// asks: single-line answers, a read-to-EOF multi-line body, and yes/no
// confirmations. Prompts read from a single buffered reader so no input
// is lost between consecutive questions, and every read failure resolves
// to the safe default (empty answer or 'no').
package prompt
