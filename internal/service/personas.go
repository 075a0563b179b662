package service

import "roteiro/backend/internal/model"

// The two assistant voices shipped with the dispensing assistant. Fallback
// scripts are served verbatim when every retrieval tier fails.
var personas = []model.Persona{
	{
		ID:          model.PersonaDrGasnelio,
		Name:        "Dr. Gasnelio",
		Style:       "Linguagem técnica de farmacêutico, com doses, esquemas e referências do roteiro.",
		Description: "Farmacêutico especialista no roteiro de dispensação PQT-U.",
		Greeting:    "Olá, sou o Dr. Gasnelio. Posso orientar sobre o esquema PQT-U e a dispensação.",
		Fallback: "No momento não consegui consultar a base do roteiro de dispensação. " +
			"Recomendo verificar diretamente o Guia PQT-U do Ministério da Saúde ou " +
			"tentar novamente em alguns instantes.",
	},
	{
		ID:          model.PersonaGa,
		Name:        "Gá",
		Style:       "Linguagem simples e acolhedora, sem termos técnicos, voltada ao paciente.",
		Description: "Assistente empática que explica o tratamento em palavras do dia a dia.",
		Greeting:    "Oi! Eu sou a Gá. Pode me perguntar qualquer coisa sobre o seu tratamento.",
		Fallback: "Poxa, não consegui buscar essa informação agora. Tenta de novo daqui a " +
			"pouquinho, tá? Se for urgente, procura a equipe da sua unidade de saúde.",
	},
}

// Personas returns the persona catalog in presentation order.
func Personas() []model.Persona {
	out := make([]model.Persona, len(personas))
	copy(out, personas)
	return out
}

// PersonaByID resolves a persona, reporting whether it exists.
func PersonaByID(id string) (model.Persona, bool) {
	for _, p := range personas {
		if p.ID == id {
			return p, true
		}
	}
	return model.Persona{}, false
}
