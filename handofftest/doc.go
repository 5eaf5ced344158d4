/*
Package handofftest provides mocks and helpers shared by the tests
of all extensions. Use them instead of building throwaway
implementations of transactions, authentication or storage.
*/
package handofftest
