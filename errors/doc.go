/*
Package errors implements custom error interfaces for handoff.

Popular root errors are declared here and every error created during
runtime should wrap one of them. This allows error tests through the Is method and
returning all errors to the client in a safe manner, mapped to ABCI
response codes.
*/
package errors
