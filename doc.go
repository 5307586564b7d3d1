/*

Package lineedit is an interactive line editor for POSIX terminals.

It provides raw-mode terminal editing with a history store, hints,
and tab completion, for host programs (REPLs, shells, diagnostic
CLIs) that want readline-like editing without depending on a
heavyweight readline implementation.

See: https://github.com/antirez/linenoise for the algorithm this
package's editing and rendering logic is based on.

*/
package lineedit
