package identifier

import (
	"github.com/zenGate-Global/palmyra-identity/validation"
)

// IssuerID identifies a credential issuer.
type IssuerID string

// SchemaID identifies a credential schema.
type SchemaID string

// CredentialDefinitionID identifies a credential definition.
type CredentialDefinitionID string

// RevocationRegistryDefinitionID identifies a revocation registry definition.
type RevocationRegistryDefinitionID string

// NewIssuerID returns a validated IssuerID.
func NewIssuerID(value string) (IssuerID, error) {
	id := IssuerID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// NewSchemaID returns a validated SchemaID.
func NewSchemaID(value string) (SchemaID, error) {
	id := SchemaID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// NewCredentialDefinitionID returns a validated CredentialDefinitionID.
func NewCredentialDefinitionID(value string) (CredentialDefinitionID, error) {
	id := CredentialDefinitionID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// NewRevocationRegistryDefinitionID returns a validated
// RevocationRegistryDefinitionID.
func NewRevocationRegistryDefinitionID(value string) (RevocationRegistryDefinitionID, error) {
	id := RevocationRegistryDefinitionID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (id IssuerID) String() string { return string(id) }

func (id SchemaID) String() string { return string(id) }

func (id CredentialDefinitionID) String() string { return string(id) }

func (id RevocationRegistryDefinitionID) String() string { return string(id) }

// Validate accepts URI-style identifiers and legacy base58 identifiers.
func (id IssuerID) Validate() error { return validateObjectID("issuer id", string(id)) }

// Validate accepts URI-style identifiers and legacy base58 identifiers.
func (id SchemaID) Validate() error { return validateObjectID("schema id", string(id)) }

// Validate accepts URI-style identifiers and legacy base58 identifiers.
func (id CredentialDefinitionID) Validate() error {
	return validateObjectID("credential definition id", string(id))
}

// Validate accepts URI-style identifiers and legacy base58 identifiers.
func (id RevocationRegistryDefinitionID) Validate() error {
	return validateObjectID("revocation registry definition id", string(id))
}

func validateObjectID(kind, value string) error {
	if IsURIIdentifier(value) || LegacyIdentifier().MatchString(value) {
		return nil
	}
	return validation.Invalidf("%s %q is neither a URI identifier nor a legacy identifier", kind, value)
}
