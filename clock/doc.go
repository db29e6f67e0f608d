/*
Package clock provides a minimal abstraction over the system time source,
allowing elapsed-time measurement code to be tested deterministically.
*/
package clock
