package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InvalidCoinError

type InvalidCoinError struct {
	Msg string
}

func (e *InvalidCoinError) Error() string {
	return e.Msg
}

func (e *InvalidCoinError) Is(target error) bool {
	_, ok := target.(*InvalidCoinError)
	return ok
}

//endregion

//region PermissionDeniedError

type PermissionDeniedError struct {
	Msg string
}

func (e *PermissionDeniedError) Error() string {
	return e.Msg
}

func (e *PermissionDeniedError) Is(target error) bool {
	_, ok := target.(*PermissionDeniedError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region ProductExistsError

type ProductExistsError struct {
	Msg string
}

func (e *ProductExistsError) Error() string {
	return e.Msg
}

func (e *ProductExistsError) Is(target error) bool {
	_, ok := target.(*ProductExistsError)
	return ok
}

//endregion

//region InvalidCostError

type InvalidCostError struct {
	Msg string
}

func (e *InvalidCostError) Error() string {
	return e.Msg
}

func (e *InvalidCostError) Is(target error) bool {
	_, ok := target.(*InvalidCostError)
	return ok
}

//endregion

//region UnrepresentableAmountError

type UnrepresentableAmountError struct {
	Msg string
}

func (e *UnrepresentableAmountError) Error() string {
	return e.Msg
}

func (e *UnrepresentableAmountError) Is(target error) bool {
	_, ok := target.(*UnrepresentableAmountError)
	return ok
}

//endregion

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region AccountExistsError

type AccountExistsError struct {
	Msg string
}

func (e *AccountExistsError) Error() string {
	return e.Msg
}

func (e *AccountExistsError) Is(target error) bool {
	_, ok := target.(*AccountExistsError)
	return ok
}

//endregion

//region CredentialsMismatchError

type CredentialsMismatchError struct {
	Msg string
}

func (e *CredentialsMismatchError) Error() string {
	return e.Msg
}

func (e *CredentialsMismatchError) Is(target error) bool {
	_, ok := target.(*CredentialsMismatchError)
	return ok
}

//endregion

//region WeakPasswordError

type WeakPasswordError struct {
	Msg string
}

func (e *WeakPasswordError) Error() string {
	return e.Msg
}

func (e *WeakPasswordError) Is(target error) bool {
	_, ok := target.(*WeakPasswordError)
	return ok
}

//endregion
