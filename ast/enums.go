package ast

// ContractKind distinguishes contracts, libraries and interfaces — all
// represented by the same ContractDefinition struct (§3.3).
type ContractKind string

const (
	ContractKindContract  ContractKind = "contract"
	ContractKindInterface ContractKind = "interface"
	ContractKindLibrary   ContractKind = "library"
)

// Visibility is shared by FunctionDefinition and VariableDeclaration.
type Visibility string

const (
	VisibilityExternal Visibility = "external"
	VisibilityPublic   Visibility = "public"
	VisibilityInternal Visibility = "internal"
	VisibilityPrivate  Visibility = "private"
)

// StateMutability classifies a function's interaction with chain state.
type StateMutability string

const (
	StateMutabilityPure       StateMutability = "pure"
	StateMutabilityView       StateMutability = "view"
	StateMutabilityNonPayable StateMutability = "nonpayable"
	StateMutabilityPayable    StateMutability = "payable"
)

// FunctionKind distinguishes the five shapes a FunctionDefinition node can
// take (§3.4). Only FunctionKindFunction carries a name that can collide.
type FunctionKind string

const (
	FunctionKindFunction     FunctionKind = "function"
	FunctionKindConstructor  FunctionKind = "constructor"
	FunctionKindFallback     FunctionKind = "fallback"
	FunctionKindReceive      FunctionKind = "receive"
	FunctionKindFreeFunction FunctionKind = "freeFunction"
)

// StorageLocation is where a variable's value physically lives.
type StorageLocation string

const (
	StorageLocationDefault StorageLocation = "default"
	StorageLocationMemory  StorageLocation = "memory"
	StorageLocationStorage StorageLocation = "storage"
	StorageLocationCallData StorageLocation = "calldata"
)
