package signup

// Field names as bound from the form.
const (
	FieldName            = "name"
	FieldAge             = "age"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// User-facing messages.
const (
	msgNameRequired      = "O nome é obrigatório"
	msgAgeRequired       = "A idade é obrigatória."
	msgAgeNotANumber     = "A idade informada não é um número."
	msgEmailRequired     = "O e-mail é obrigatório."
	msgEmailFormat       = "O formato do e-mail informado é inválido."
	msgEmailDomain       = "O e-mail precisa ser do gmail."
	msgPasswordMin       = "A senha deve ter no mínimo %d caracteres"
	msgConfirmRequired   = "Confirme a sua senha."
	msgPasswordsMismatch = "As senhas precisam ser iguais"
)
