/*
Package x contains interfaces and helpers shared between the
extensions that build on the framework root.

Most importantly it defines the Authenticator interface, which
decouples the handlers from any concrete authentication system.
Handlers receive an Authenticator in their constructor and only
ever ask "does this context hold this address".
*/
package x
