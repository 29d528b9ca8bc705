package entities

// Identity is the verified claim produced by a successful credential
// verification. Email is the only claim the handlers rely on.
type Identity struct {
	Email string
}
