// Package layout prints several fixed-width columns of styled blocks side by
// side, wrapping each column independently.
package layout
