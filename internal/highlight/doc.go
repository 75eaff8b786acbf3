// Package highlight turns an expression into styled blocks for terminal
// output. Blocks carry a Role; a Scheme maps roles to escape sequences, so
// the same blocks can be printed with colour or stripped for plain output.
package highlight
