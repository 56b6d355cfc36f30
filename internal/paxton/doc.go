// Package paxton converts Kantec EntraPass card credentials into the Paxton 10
// card number format. The record layout, checksum and marker placement were
// reverse-engineered from captured reader data.
package paxton
