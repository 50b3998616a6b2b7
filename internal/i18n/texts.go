package i18n

var texts = map[string]map[string]string{
	LangSpanish: {
		KeyAppTitle:       "Rick and Morty App",
		KeyNavCharacters:  "Personajes",
		KeyNavSearch:      "Buscar",
		KeyFile:           "Archivo",
		KeyView:           "Ver",
		KeySettings:       "Configuración",
		KeyLanguage:       "Idioma",
		KeyQuit:           "Salir",
		KeySave:           "Guardar",
		KeyCancel:         "Cancelar",
		KeyBrowse:         "Examinar",
		KeySettingsSaved:  "¡Configuración guardada!",
		KeyAPIURL:         "URL de la API",
		KeyExportDir:      "Carpeta de exportación",
		KeyRevealOnExport: "Mostrar el PDF al exportar",
		KeyTimeoutSeconds: "Tiempo de espera (segundos)",
		KeyInvalidURL:     "URL no válida",
		KeySystemDefault:  "Predeterminado del sistema",

		KeyLoading:      "Cargando personajes...",
		KeyRetry:        "Reintentar",
		KeyPrevious:     "Anterior",
		KeyNext:         "Siguiente",
		KeyPageOf:       "Página %d de %d",
		KeyNoCharacters: "No hay personajes para mostrar.",

		KeySearchPlaceholder: "Nombre o ID del personaje",
		KeySearchByName:      "Nombre",
		KeySearchByID:        "ID",
		KeySearch:            "Buscar",
		KeyDownloadPDF:       "Descargar PDF",
		KeyNoMatchByName:     "No se encontró ningún personaje con ese nombre.",
		KeyExportSaved:       "PDF guardado en %s",
		KeyExportFailed:      "No se pudo generar el PDF: %s",
		KeyOpenPDF:           "Abrir PDF",
		KeyOpenFailed:        "No se pudo abrir el PDF: %s",

		KeyNotFoundTitle:   "404",
		KeyNotFoundMessage: "La página que buscas no existe en esta dimensión.",
		KeyGoHome:          "Volver al inicio",

		KeyFieldID:       "ID",
		KeyFieldStatus:   "Estado",
		KeyFieldSpecies:  "Especie",
		KeyFieldType:     "Tipo",
		KeyFieldGender:   "Género",
		KeyFieldOrigin:   "Origen",
		KeyFieldLocation: "Ubicación",

		KeyErrConnection: "No se pudo conectar con el servidor. Verifica tu conexión.",
		KeyErrNotFound:   "Personaje no encontrado.",
		KeyErrServer:     "Error en el servidor. Intenta más tarde.",
		KeyErrStatus:     "Error del servidor: %d",
		KeyErrClient:     "Error: %s",
		KeyErrUnknown:    "Ocurrió un error desconocido",
	},

	LangEnglish: {
		KeyAppTitle:       "Rick and Morty App",
		KeyNavCharacters:  "Characters",
		KeyNavSearch:      "Search",
		KeyFile:           "File",
		KeyView:           "View",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyQuit:           "Quit",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyBrowse:         "Browse",
		KeySettingsSaved:  "Settings saved!",
		KeyAPIURL:         "API URL",
		KeyExportDir:      "Export Directory",
		KeyRevealOnExport: "Reveal PDF after export",
		KeyTimeoutSeconds: "Request timeout (seconds)",
		KeyInvalidURL:     "Invalid URL",
		KeySystemDefault:  "System Default",

		KeyLoading:      "Loading characters...",
		KeyRetry:        "Retry",
		KeyPrevious:     "Previous",
		KeyNext:         "Next",
		KeyPageOf:       "Page %d of %d",
		KeyNoCharacters: "No characters to show.",

		KeySearchPlaceholder: "Character name or ID",
		KeySearchByName:      "Name",
		KeySearchByID:        "ID",
		KeySearch:            "Search",
		KeyDownloadPDF:       "Download PDF",
		KeyNoMatchByName:     "No character found with that name.",
		KeyExportSaved:       "PDF saved to %s",
		KeyExportFailed:      "Could not generate the PDF: %s",
		KeyOpenPDF:           "Open PDF",
		KeyOpenFailed:        "Could not open the PDF: %s",

		KeyNotFoundTitle:   "404",
		KeyNotFoundMessage: "The page you are looking for does not exist in this dimension.",
		KeyGoHome:          "Back to home",

		KeyFieldID:       "ID",
		KeyFieldStatus:   "Status",
		KeyFieldSpecies:  "Species",
		KeyFieldType:     "Type",
		KeyFieldGender:   "Gender",
		KeyFieldOrigin:   "Origin",
		KeyFieldLocation: "Location",

		KeyErrConnection: "Could not connect to the server. Check your connection.",
		KeyErrNotFound:   "Character not found.",
		KeyErrServer:     "Server error. Try again later.",
		KeyErrStatus:     "Server error: %d",
		KeyErrClient:     "Error: %s",
		KeyErrUnknown:    "An unknown error occurred",
	},

	LangPortuguese: {
		KeyAppTitle:       "Rick and Morty App",
		KeyNavCharacters:  "Personagens",
		KeyNavSearch:      "Buscar",
		KeyFile:           "Arquivo",
		KeyView:           "Exibir",
		KeySettings:       "Configurações",
		KeyLanguage:       "Idioma",
		KeyQuit:           "Sair",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeyBrowse:         "Navegar",
		KeySettingsSaved:  "Configurações salvas!",
		KeyAPIURL:         "URL da API",
		KeyExportDir:      "Diretório de Exportação",
		KeyRevealOnExport: "Mostrar o PDF após exportar",
		KeyTimeoutSeconds: "Tempo limite (segundos)",
		KeyInvalidURL:     "URL inválida",
		KeySystemDefault:  "Padrão do sistema",

		KeyLoading:      "Carregando personagens...",
		KeyRetry:        "Tentar novamente",
		KeyPrevious:     "Anterior",
		KeyNext:         "Próxima",
		KeyPageOf:       "Página %d de %d",
		KeyNoCharacters: "Nenhum personagem para mostrar.",

		KeySearchPlaceholder: "Nome ou ID do personagem",
		KeySearchByName:      "Nome",
		KeySearchByID:        "ID",
		KeySearch:            "Buscar",
		KeyDownloadPDF:       "Baixar PDF",
		KeyNoMatchByName:     "Nenhum personagem encontrado com esse nome.",
		KeyExportSaved:       "PDF salvo em %s",
		KeyExportFailed:      "Não foi possível gerar o PDF: %s",
		KeyOpenPDF:           "Abrir PDF",
		KeyOpenFailed:        "Não foi possível abrir o PDF: %s",

		KeyNotFoundTitle:   "404",
		KeyNotFoundMessage: "A página que você procura não existe nesta dimensão.",
		KeyGoHome:          "Voltar ao início",

		KeyFieldID:       "ID",
		KeyFieldStatus:   "Estado",
		KeyFieldSpecies:  "Espécie",
		KeyFieldType:     "Tipo",
		KeyFieldGender:   "Gênero",
		KeyFieldOrigin:   "Origem",
		KeyFieldLocation: "Localização",

		KeyErrConnection: "Não foi possível conectar ao servidor. Verifique sua conexão.",
		KeyErrNotFound:   "Personagem não encontrado.",
		KeyErrServer:     "Erro no servidor. Tente mais tarde.",
		KeyErrStatus:     "Erro do servidor: %d",
		KeyErrClient:     "Erro: %s",
		KeyErrUnknown:    "Ocorreu um erro desconhecido",
	},
}
